package main

import (
	"io"

	"github.com/joho/godotenv"

	mrtdirections "github.com/theoremus-urban-solutions/mrt-directions"
	"github.com/theoremus-urban-solutions/mrt-directions/config"
	"github.com/theoremus-urban-solutions/mrt-directions/internal/logger"
	"github.com/theoremus-urban-solutions/mrt-directions/network"
)

func main() {
	// .env is optional; config.yml is not.
	_ = godotenv.Load()
	if err := config.LoadAppConfig(); err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	cfg := config.Config

	writers := []io.Writer{logger.ConsoleWriter()}
	if cfg.Logging.FilePath != "" {
		writers = append(writers, logger.FileWriter(cfg.Logging.FilePath))
	}
	log := logger.New(logger.ParseLogLevel(cfg.Logging.Level), writers...)

	log.Info().
		Int("port", cfg.Server.Port).
		Str("station_map", cfg.Network.StationMapPath).
		Msg("mrt directions service starting")

	model, err := network.LoadFile(cfg.Network.StationMapPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build network model")
	}

	svc := mrtdirections.NewService(model, log)
	srv := mrtdirections.NewServer(svc, cfg.Server.Port, log)
	srv.Start()
	srv.HandleGracefulShutdown()
}
