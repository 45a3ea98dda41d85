package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"recipe-vault/backend/config"
	"recipe-vault/backend/global"
	"recipe-vault/backend/initialize"
	"recipe-vault/backend/server"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envFile := flag.String("env", ".env", "Optional .env file loaded before the config")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		global.Logger.Warn().Err(err).Str("file", *envFile).Msg("load env file")
	}

	cfg, err := config.Watch(*configPath, func(c *config.Config) {
		initialize.SetLogLevel(c.Log.Level)
		global.Logger.Info().Str("level", c.Log.Level).Msg("config reloaded")
	})
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("load config")
	}
	initialize.SetupLogger(cfg.Log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initialize.Build(ctx, cfg)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build app")
	}
	defer app.Close()

	srv := server.NewHTTPServer(cfg.Server.Host, cfg.Server.Port, app.Router)
	if err := server.Run(ctx, srv); err != nil {
		global.Logger.Error().Err(err).Msg("server stopped")
	}
}
