// Tinge - A perceptual colorscheme engine
//
// Tinge converts colors between spaces, reshapes them channel by channel
// in Oklab, and transforms, blends and animates whole editor colorschemes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tinge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
