package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vidmarkt/internal/buildinfo"
	"github.com/dmitrijs2005/vidmarkt/internal/client/cli"
	"github.com/dmitrijs2005/vidmarkt/internal/client/config"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	_ "github.com/joho/godotenv/autoload"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
