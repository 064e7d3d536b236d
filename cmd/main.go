package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"flvtag/pkg/inspect"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config directory, defaults to ../config next to the binary")
	hexTag := flag.String("hex", "", "hex dump of one raw tag (no previous tag size)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config dir] [-hex tag] [tagfile ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *hexTag == "" && flag.NArg() == 0 {
		flag.Usage()
		return 2
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var opts []inspect.Option
	if *configPath != "" {
		opts = append(opts, inspect.WithConfigPath(*configPath))
	}

	ins, err := inspect.New(opts...)
	if err != nil {
		logger.Error("create inspector instance", zap.Error(err))
		return 1
	}
	defer ins.Close()

	var reports []*inspect.TagReport
	failed := 0
	collect := func(r *inspect.TagReport, err error) {
		if err != nil {
			failed++
		}
		if r != nil {
			reports = append(reports, r)
		}
	}

	if *hexTag != "" {
		collect(ins.InspectHex(*hexTag))
	}
	for _, path := range flag.Args() {
		collect(ins.InspectFile(path))
	}

	if err := ins.WriteReport(reports); err != nil {
		ins.Logger().Error("write report", zap.Error(err))
		return 1
	}

	ins.Logger().Info("inspect done", zap.Int("tags", len(reports)), zap.Int("failed", failed))
	if failed > 0 {
		return 1
	}

	return 0
}
