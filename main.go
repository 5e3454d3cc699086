package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"
)

func main() {
	cfg, err := ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Verbose)

	// Build topology
	ft, err := BuildFatTree(cfg.K, cfg.BandwidthMbps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building topology: %v\n", err)
		os.Exit(1)
	}
	p := ft.Params
	logger.Printf("Built fat-tree k=%d: %d core, %d aggregation, %d edge switches, %d hosts, %d links",
		p.K, p.NumCore, p.NumAgg, p.NumEdge, p.NumHost, len(ft.Links))

	if cfg.PathsBetween != "" {
		if err := printPaths(ft, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error analysing paths: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeOutput(ft, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func writeOutput(ft *FatTree, cfg Config, logger *log.Logger) error {
	w := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cfg.Output, err)
		}
		defer f.Close()
		w = f
	}

	switch cfg.Format {
	case FormatTinet:
		topo := NewTopology(ft.Params, cfg.Image, logger)
		if err := Realize(ft, topo); err != nil {
			return err
		}
		return writeYAML(w, topo.Spec())
	case FormatYAML:
		return writeYAML(w, ft)
	case FormatJSON:
		return writeJSON(w, ft)
	}
	return fmt.Errorf("unknown format %q", cfg.Format)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func printPaths(ft *FatTree, cfg Config) error {
	src, dst, err := cfg.PathEndpoints()
	if err != nil {
		return err
	}
	fg, err := NewFabricGraph(ft)
	if err != nil {
		return err
	}
	n, hops, err := fg.EqualCostPaths(src, dst)
	if err != nil {
		return err
	}
	route, err := fg.Route(src, dst)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s -> %s: %d equal-cost paths of %d hops, e.g. %v\n", src, dst, n, hops, route)
	return nil
}
