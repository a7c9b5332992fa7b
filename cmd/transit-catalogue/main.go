package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	lib "github.com/theoremus-urban-solutions/transit-catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/internal"
	"github.com/theoremus-urban-solutions/transit-catalogue/server"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	format := flag.String("format", lib.FormatJSON, "json|text (input and output)")
	input := flag.String("input", "-", "input document: file path, http(s) URL or - for stdin")
	configPath := flag.String("config", "", "config file (default: $"+config.EnvConfigPath+", config.yml, ./configs/config.yml)")
	strict := flag.Bool("strict", false, "fail when any referenced stop is never defined")
	flag.Parse()

	if err := loadConfig(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *strict {
		config.Config.Catalogue.StrictStops = true
	}
	if err := internal.InitLogging(config.Config.Logging); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(*mode, *format, *input); err != nil {
		log := internal.Logger()
		log.Error().Err(err).Str("mode", *mode).Msg("transit-catalogue failed")
		os.Exit(1)
	}
}

func loadConfig(path string) error {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		config.Config = cfg
		return nil
	}
	// Defaults apply when no default config file exists.
	if err := config.LoadAppConfig(); err != nil && !errors.Is(err, config.ErrNoConfigFile) {
		return err
	}
	return nil
}

func run(mode, format, input string) error {
	log := internal.Logger()
	data, err := newFetcher(config.Config.Fetch).fetch(input)
	if err != nil {
		return err
	}

	pipeline := lib.NewPipeline(config.Config, log)
	switch mode {
	case "oneshot":
		ds, err := pipeline.Process(bytes.NewReader(data), format)
		if err != nil {
			return err
		}
		out := bufio.NewWriter(os.Stdout)
		if err := ds.Write(out, format); err != nil {
			return err
		}
		return out.Flush()
	case "serve":
		pipeline.AlwaysRoute = true
		ds, err := pipeline.Process(bytes.NewReader(data), format)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(ds.Responder, ds.ServerInfo(), config.Config.Server, log).Run(ctx)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
