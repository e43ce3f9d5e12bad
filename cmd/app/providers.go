package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
	"github.com/inetready/travel-advisor/internal/infra/advicestore"
	"github.com/inetready/travel-advisor/internal/infra/config"
	"github.com/inetready/travel-advisor/internal/infra/geodata"
	"github.com/inetready/travel-advisor/internal/infra/profilerepo"
	"github.com/inetready/travel-advisor/internal/infra/weather/heatapi"
	httpiface "github.com/inetready/travel-advisor/internal/interface/http"
)

func provideDistanceTable() *geodata.Table {
	return geodata.NewTable()
}

func provideWeatherClient(cfg *config.Config) traveladvisor.WeatherClient {
	return heatapi.NewClient(cfg.Weather.APIBaseURL)
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) traveladvisor.ProfileRepository {
	fallback := profilerepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Profiles.Postgres.DSN)
	if dsn == "" {
		logger.Info("profiles postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Profiles.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Profiles.Postgres.MaxConns
	}
	if cfg.Profiles.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Profiles.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("profiles postgres repository enabled")
	return profilerepo.NewPostgresRepository(pool)
}

func provideAdviceStore(cfg *config.Config, logger *slog.Logger) traveladvisor.AdviceStore {
	if cfg.Advice.Valkey.Enabled {
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: []string{cfg.Advice.Valkey.Addr},
		})
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return advicestore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("advice valkey store enabled", "addr", cfg.Advice.Valkey.Addr)
			return advicestore.NewValkeyStore(client, "advice")
		}
	}
	return advicestore.NewMemoryStore()
}

func provideAdvisorService(
	cfg *config.Config,
	weather traveladvisor.WeatherClient,
	table *geodata.Table,
	profiles traveladvisor.ProfileRepository,
	store traveladvisor.AdviceStore,
	logger *slog.Logger,
) traveladvisor.Service {
	svc := traveladvisor.NewService(weather, table, profiles, logger)
	if cfg.Advice.CacheTTL > 0 {
		svc = traveladvisor.NewCachedService(svc, store, cfg.Advice.CacheTTL, logger)
	}
	return svc
}

func provideCityDirectory(table *geodata.Table) httpiface.CityDirectory {
	return table
}
