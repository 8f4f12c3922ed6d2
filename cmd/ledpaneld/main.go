package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wheelibin/ledpanel/internal/config"
	"github.com/wheelibin/ledpanel/internal/panel"
	"github.com/wheelibin/ledpanel/internal/server"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "path to the config file")
	pflag.String("listen", "", "address to serve the api on")
	pflag.String("log-level", "", "debug, info, warn or error")
	pflag.Parse()

	_ = viper.BindPFlag("listen", pflag.Lookup("listen"))
	_ = viper.BindPFlag("logLevel", pflag.Lookup("log-level"))

	// read the config file
	cfg, err := config.InitialiseConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr, cfg)
	logger.Info("ledpaneld starting")

	// create/wire up services
	p, err := panel.New(logger, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer p.Close()

	srv := server.NewServer(logger, p, p.Bus)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go p.Run(ctx)

	go func() {
		if err := srv.Start(cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err)
			stop()
		}
	}()

	<-ctx.Done()

	// cleanup before exit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error(err)
	}
	logger.Info("ledpaneld is closing")
}
