package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"termfolio/app"
	"termfolio/config"
	"termfolio/core"
)

const version = "0.3.0"

var (
	configFlag  = flag.String("config", "", "path to the config file")
	debugFlag   = flag.Bool("debug", false, "write logs to ./"+logDir)
	fpsFlag     = flag.Int("fps", 0, "override the frame rate")
	effectFlag  = flag.String("effect", "", "start with this effect")
	printFlag   = flag.Bool("print", false, "print the portfolio to stdout and exit")
	versionFlag = flag.Bool("version", false, "print the version and exit")
)

func main() {
	// Restore the terminal before any stack trace lands on it.
	defer func() {
		core.HandleCrash(recover())
	}()

	flag.Parse()

	if *versionFlag {
		fmt.Println("termfolio " + version)
		return
	}
	if *printFlag {
		printPortfolio(os.Stdout)
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}
	if *fpsFlag > 0 {
		cfg.General.FPS = *fpsFlag
		if cfg.General.FPS > config.MaxFPS {
			cfg.General.FPS = config.MaxFPS
		}
	}
	if *effectFlag != "" {
		cfg.General.Effect = *effectFlag
	}

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termfolio: %v\n", err)
		os.Exit(1)
	}
	defer a.Teardown()

	log.Printf("termfolio %s, %d fps, effect %q", version, cfg.General.FPS, cfg.General.Effect)
	a.Run()
}
