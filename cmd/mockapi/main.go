package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/vidmarkt/internal/buildinfo"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/config"
	_ "github.com/joho/godotenv/autoload"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	app, err := mockapi.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
