package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storybook/api"
	"storybook/core"
	"storybook/holder"
	"storybook/lib/sl"
	"storybook/storage"
	"storybook/studio"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := core.MustLoad(*configPath)
	log := setupLogger(conf.Env)
	log.With(
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		slog.String("port", conf.Listen.Port),
	).Info("starting storybook api")

	// Initialize storage based on config
	var store storage.DocumentStorage
	if conf.Mongo.Enabled {
		var err error
		store, err = storage.NewMongoStorage(conf.MongoURI(), conf.Mongo.Database, log)
		if err != nil {
			log.With(
				slog.String("db", conf.Mongo.Database),
				slog.String("user", conf.Mongo.User),
				slog.String("host", conf.Mongo.Host),
				sl.Secret("password", conf.Mongo.Password),
			).Error("falling back to memory", sl.Err(err))
			store = storage.NewMemoryStorage()
		} else {
			log.Info("using MongoDB storage")
		}
	} else {
		store = storage.NewMemoryStorage()
		log.Info("using in-memory storage")
	}

	service := studio.NewStudio(holder.NewArchive(store, log), log)
	server := api.NewServer(conf, log)
	server.SetService(service)

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil {
			log.Error("server stopped with error", sl.Err(err))
			requestShutdown(sigChan)
		}
	}()

	sig := <-sigChan
	log.Info("received signal, shutting down", slog.String("signal", sig.String()))

	server.Stop()

	if err := service.Close(); err != nil {
		log.Error("error closing storage", sl.Err(err))
	}

	log.Info("shutdown complete")
}

// requestShutdown queues SIGTERM unless a signal is already pending.
func requestShutdown(sigChan chan<- os.Signal) {
	select {
	case sigChan <- syscall.SIGTERM:
	default:
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal, envDev:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
