// Package main trains a scalar network on the XOR truth table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/scalarnet/nn"
	"github.com/born-ml/scalarnet/train"
)

const version = "v0.0.1-dev"

var (
	flagEpochs  = flag.Int("epochs", train.DefaultEpochs, "number of training epochs")
	flagHidden  = flag.Int("hidden", nn.DefaultHiddenLayers, "number of hidden layers")
	flagLR      = flag.Float64("lr", nn.DefaultLearningRate, "learning rate")
	flagSeed    = flag.Uint64("seed", 0, "weight initialization seed (0 = time based)")
	flagReport  = flag.Int("report", 10000, "log the loss every n epochs (0 disables)")
	flagWeights = flag.Bool("weights", false, "print the trained weight matrices")
	flagPre     = flag.Bool("pre-update", false, "propagate errors with pre-update weights")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("scalarnet %s\n", version)
		return
	}
	flag.Parse()

	cfg := nn.DefaultConfig(2, 1)
	cfg.HiddenLayers = *flagHidden
	cfg.LearningRate = *flagLR
	cfg.Initializer = nn.DefaultUniform(*flagSeed)
	if *flagPre {
		cfg.Order = nn.PreUpdate
	}

	net, err := nn.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	log.Printf("Network %v, learning rate %v, %s order", net.Sizes(), net.LearningRate(), net.Context().Order)

	ds := train.XOR()
	train.Train(net, ds, train.Config{
		Epochs: *flagEpochs,
		OnEpoch: func(epoch int) {
			if *flagReport > 0 && epoch%*flagReport == 0 {
				log.Printf("Epoch %d: mse %.6f", epoch, train.MeanSquaredError(net, ds))
			}
		},
	})

	for _, ex := range ds {
		net.SetInput(ex.Input)
		fmt.Printf("%v XOR %v = %v\n", ex.Input[0], ex.Input[1], net.Prediction())
	}

	if *flagWeights {
		for l, w := range net.Weights() {
			fmt.Printf("\nlayer %d weights:\n%v\n", l+1, mat.Formatted(w, mat.Prefix(""), mat.Squeeze()))
		}
	}
}
