//go:build wireinject
// +build wireinject

package main

import (
	"kpoller/cmd"
	"kpoller/database"
	"kpoller/internal/config"
	"kpoller/internal/handlers"
	"kpoller/internal/repository"
	"kpoller/internal/services"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("kpoller.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewBoxService,
		handlers.NewBoxHandler,
		repository.NewBoxRepository,
		services.NewSubscriberService,
		handlers.NewSubscriberHandler,
		repository.NewSubscriberRepository,
		database.SetupDatabase,
		services.NewLogService,
		services.NewLogNotifier,
		services.NewIngestService,
		services.NewNopBoxSource,
		services.NewPollerService,
		Provider,
	)
	return nil, nil
}
