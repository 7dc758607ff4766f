package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"server-herald/internal/command"
	"server-herald/internal/config"
	"server-herald/internal/discord"
	"server-herald/internal/logger"
	"server-herald/internal/middleware"
	"server-herald/internal/storage"
	v "server-herald/internal/version"
	"server-herald/pkg/cmd"

	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := logger.New("", "info")
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogPath, cfg.LogLevel)
	log.Info().Str("app", v.AppName).Str("version", v.Version).Msg("starting bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	registry := cmd.NewRegistry()
	mws := []cmd.Middleware{
		middleware.WithManagerCheck(),
		middleware.WithGuildOnly(),
		middleware.WithRateLimit(rate.Every(2*time.Second), 3),
		middleware.WithCommandLogger(),
	}
	for _, c := range []cmd.Command{
		&command.SayCommand{},
		&command.EditCommand{},
		&command.DMCommand{},
		&command.SetRoleCommand{},
		&command.LogCommand{},
		&command.HelpCommand{},
		&command.PingCommand{},
		&command.AboutCommand{},
	} {
		registry.Register(cmd.Apply(c, mws...))
	}

	bot := discord.NewBot(cfg, store, registry, logger.For(log, "discord"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("discord bot error")
		}
		cancel()
	}

	log.Info().Msg("bot exited cleanly")
}
