//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/inetready/travel-advisor/internal/bootstrap"
	"github.com/inetready/travel-advisor/internal/infra/config"
	httpiface "github.com/inetready/travel-advisor/internal/interface/http"
	"github.com/inetready/travel-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideDistanceTable,
		provideWeatherClient,
		provideProfileRepository,
		provideAdviceStore,
		provideAdvisorService,
		provideCityDirectory,
		httpiface.NewAdvisorHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
