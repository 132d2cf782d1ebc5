package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	. "github.com/ttpr0/go-access/util"
	"golang.org/x/exp/slog"
)

func main() {
	config_file := flag.String("config", "./config.yaml", "path to the config file")
	out := flag.String("out", "", "result file, overrides the config output")
	log_level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := ParseLevel(*log_level)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(2)
	}
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	config, err := ReadConfig(*config_file)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	if *out != "" {
		config.Output = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := RunPipeline(ctx, config)
	if err != nil {
		slog.Error("failed to compute result", "error", err)
		os.Exit(1)
	}
	if err := WriteJSONToFile(result, config.Output); err != nil {
		slog.Error("failed to write result", "error", err)
		os.Exit(1)
	}
	slog.Info("Wrote result", "file", config.Output)
}
