package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"linearlist/internal/listdemo"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/spf13/pflag"
)

func main() {
	configFile := pflag.String("config", "", "config file, defaults to ./config.<env>.yaml")
	pflag.String("engine", listdemo.EngineBoth, "list engine: array | linked | both")
	pflag.Int("capacity", 0, "array list capacity")
	pflag.Int("node-limit", 0, "linked list node limit, 0 for unlimited")
	pflag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	env := os.Getenv("env")
	switch env {
	case "release", "test":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Msgf("listdemo starting... running in [ %s ] mode", env)

	cfg, err := listdemo.LoadConfig(*configFile, pflag.CommandLine)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("load config failed")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if _, err := listdemo.Run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Stack().Err(err).Msg("listdemo failed")
		cancel()
		os.Exit(1)
	}
}
