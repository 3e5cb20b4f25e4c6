package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	labstockserver "github.com/labops/labstock/server"

	contactapp "github.com/labops/labstock/internal/domains/contact/application"
	geostatic "github.com/labops/labstock/internal/domains/geo/adapters/static"
	geoapp "github.com/labops/labstock/internal/domains/geo/application"
	geodomain "github.com/labops/labstock/internal/domains/geo/domain"
	geoports "github.com/labops/labstock/internal/domains/geo/ports"
	invobs "github.com/labops/labstock/internal/domains/inventory/adapters/observability"
	snapfile "github.com/labops/labstock/internal/domains/inventory/adapters/snapshot/file"
	snappostgres "github.com/labops/labstock/internal/domains/inventory/adapters/snapshot/postgres"
	snapredis "github.com/labops/labstock/internal/domains/inventory/adapters/snapshot/redis"
	invapp "github.com/labops/labstock/internal/domains/inventory/application"
	invports "github.com/labops/labstock/internal/domains/inventory/ports"

	"github.com/labops/labstock/internal/clients/http/locator"
	platformobservability "github.com/labops/labstock/internal/platform/observability"
	platformpostgres "github.com/labops/labstock/internal/platform/postgres"
	platformredis "github.com/labops/labstock/internal/platform/redis"
)

// Run boots the lab inventory HTTP API with observability, the snapshot
// store, and the geolocation provider wired.
func Run(ctx context.Context) error {
	const serviceName = "labstock-api"
	cfg := LoadConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	snapshots, cleanupSnapshots, err := buildSnapshotStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to configure snapshot store: %w", err)
	}
	defer cleanupSnapshots()

	coreInventory := invapp.NewService(snapshots)
	if err := coreInventory.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}
	inventoryService := invobs.New(
		coreInventory,
		invobs.WithLogger(logger),
		invobs.WithTracer(instruments.Tracer("internal.inventory.application")),
		invobs.WithMeter(instruments.Meter("internal.inventory.application")),
	)

	geoService := geoapp.NewService(buildPositionProvider(cfg, logger))
	contactService := contactapp.NewService()

	handlers := labstockserver.ApiHandleFunctions{
		InventoryAPI: labstockserver.NewInventoryAPI(inventoryService),
		GeoAPI:       labstockserver.NewGeoAPI(inventoryService, geoService),
		ContactAPI:   labstockserver.NewContactAPI(contactService),
	}

	router := labstockserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("labstock API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("labstock API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildSnapshotStore picks the first available persistence backend in
// order of durability: postgres, then redis, then a local file.
func buildSnapshotStore(ctx context.Context, cfg Config, logger *slog.Logger) (invports.SnapshotStore, func(), error) {
	if db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger); db != nil {
		logger.Info("snapshot store configured with postgres")
		return snappostgres.NewStore(db), cleanup, nil
	}
	if client, cleanup := platformredis.ConnectOptional(ctx, cfg.RedisAddr, logger); client != nil {
		logger.Info("snapshot store configured with redis")
		return snapredis.NewStore(client), cleanup, nil
	}
	store, err := snapfile.NewStore(cfg.SnapshotFile)
	if err != nil {
		return nil, func() {}, err
	}
	logger.Warn("snapshot store falling back to local file", slog.String("path", cfg.SnapshotFile))
	return store, func() {}, nil
}

func buildPositionProvider(cfg Config, logger *slog.Logger) geoports.PositionProvider {
	if cfg.GeoProvider != "" {
		client, err := locator.NewClient(cfg.GeoProvider, nil)
		if err == nil {
			logger.Info("position provider configured with locator endpoint", slog.String("url", cfg.GeoProvider))
			return client
		}
		logger.Warn("invalid locator endpoint, pinning position to the depot", slog.String("error", err.Error()))
	}
	return geostatic.NewProvider(geodomain.LabCentralDepot.Coordinate)
}
