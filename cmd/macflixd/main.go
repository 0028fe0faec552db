package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vmunix/macflix/internal/config"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: discovered)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	checkOnly := flag.Bool("check", false, "Validate config and catalog, then exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("macflixd %s\n", version)
		os.Exit(0)
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	run := runServer
	if *checkOnly {
		run = checkConfig
	}
	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
