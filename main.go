package main

import (
	"os"

	"github.com/sunwei/mdsite/config"
	"github.com/sunwei/mdsite/log"
	"github.com/sunwei/mdsite/site"
	"github.com/sunwei/mdsite/sitefs"
)

// The roots arrive pre-resolved; flag parsing lives outside this program.
func resolveRoots() (inputRoot, outputRoot string) {
	inputRoot = os.Getenv("MDSITE_INPUT")
	if inputRoot == "" {
		inputRoot = "."
	}
	outputRoot = os.Getenv("MDSITE_OUTPUT")
	if outputRoot == "" {
		outputRoot = "out"
	}
	return inputRoot, outputRoot
}

func main() {
	log.Init()

	inputRoot, outputRoot := resolveRoots()

	cfg, err := config.LoadSiteConfig(sitefs.Os, inputRoot)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	// The resolved roots always win over config file values.
	cfg.Set("inputRoot", inputRoot)
	cfg.Set("outputRoot", outputRoot)

	s, err := site.New(cfg, sitefs.Os)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if _, err := s.Build(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
