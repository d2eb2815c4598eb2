package main

import (
	"context"
	"log/slog"
	"os"

	"chirpmap/config"
	"chirpmap/internal/delivery"
	"chirpmap/internal/delivery/api"
	"chirpmap/internal/delivery/api/router/handler"
	"chirpmap/internal/infra/geocode"
	logs "chirpmap/internal/infra/log"
	"chirpmap/internal/infra/pubsub"
	"chirpmap/internal/infra/stream"
	"chirpmap/internal/usecase"
	"chirpmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			closeSyncOnStop,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			geocode.NewGeoProvider,
		),
		pubsub.Module,
		stream.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSuggestionControllerFactory,
			impl.NewReverseGeocodeService,
			impl.NewViewportService,
			fx.Annotate(
				impl.NewLocationSyncService,
				fx.ParamTags(``, ``, ``, `group:"flyto_sinks"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewViewportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// closeSyncOnStop stops the suggestion controllers once the HTTP server is down.
func closeSyncOnStop(lc fx.Lifecycle, syncUC usecase.LocationSyncUsecase) {
	lc.Append(fx.StopHook(syncUC.Close))
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
