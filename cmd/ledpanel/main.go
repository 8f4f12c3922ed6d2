package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/panel"
	"github.com/wheelibin/ledpanel/internal/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "path to the config file")
	pflag.Parse()

	// read the config file
	cfg, err := config.InitialiseConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// the terminal belongs to the ui, so log to a file
	logger := config.NewLogger(&lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxAge:   3,
	}, cfg)
	logger.Info("ledpanel starting")

	// create/wire up services
	p, err := panel.New(logger, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// keep the strips in sync with config changes
	go p.Run(ctx)

	// run the terminal UI
	if err := tui.NewPanelTUI(logger, p).Run(); err != nil {
		logger.Error(err)
	}

	logger.Info("ledpanel is closing")
}
