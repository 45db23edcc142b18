package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/honeycombio/otel-config-go/otelconfig"
	"golang.org/x/sync/errgroup"
	"maragu.dev/env"
	"maragu.dev/errors"

	"maragu.dev/pager/log"
)

// Goer is just the executing part of [errgroup.Group].
type Goer interface {
	Go(func() error)
}

// StartFunc is given to [Start] and should not block, instead starting components with the given error group.
type StartFunc = func(ctx context.Context, log *slog.Logger, eg Goer) error

type startOptions struct {
	name           string
	otelEnabled    bool
	otelEndpoint   string
	serviceVersion string
}

// Start sets up the main application context, the [slog.Logger], an [errgroup.Group], and Open Telemetry tracing, and calls the given callback.
// The callback function should start up all necessary components of the app using the error group, and not block on anything itself in the main goroutine.
func Start(startCallback StartFunc) {
	// Catch SIGTERM and SIGINT from the terminal, so we can do clean shutdowns.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// This loads from .env in development and /run/secrets/env when run in a container through Docker compose.
	// We ignore errors because neither may exist.
	_ = env.Load(".env")
	_ = env.Load("/run/secrets/env")

	level, err := log.ParseLevel(env.GetStringOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		panic(err)
	}

	log := log.NewLogger(log.NewLoggerOptions{
		JSON:   env.GetBoolOrDefault("LOG_JSON", true),
		Level:  level,
		NoTime: env.GetBoolOrDefault("LOG_NO_TIME", false),
	})

	opts := startOptions{
		name:           env.GetStringOrDefault("APP_NAME", "Pager"),
		otelEnabled:    env.GetBoolOrDefault("OTEL_ENABLED", true),
		otelEndpoint:   env.GetStringOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io"),
		serviceVersion: getVersion(),
	}

	log.Info("Starting app", "name", opts.name, "version", opts.serviceVersion)

	// We call the callback so it can return errors and we can handle it just here.
	// Also makes it easier to test starting the app if needed, because tests don't handle os.Exit well.
	if err := start(ctx, log, opts, startCallback); err != nil {
		log.Error("Error starting app", "name", opts.name, "error", err)
		os.Exit(1)
	}

	log.Info("Stopped app", "name", opts.name)
}

func start(ctx context.Context, log *slog.Logger, opts startOptions, startCallback StartFunc) error {
	if opts.otelEnabled {
		otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
			otelconfig.WithServiceName(opts.name), otelconfig.WithServiceVersion(opts.serviceVersion),
			otelconfig.WithMetricsEnabled(false),
			otelconfig.WithExporterProtocol(otelconfig.ProtocolHTTPProto), otelconfig.WithExporterEndpoint(opts.otelEndpoint),
		)
		if err != nil {
			return errors.Wrap(err, "error configuring open telemetry")
		}
		defer otelShutdown()
	}

	eg, ctx := errgroup.WithContext(ctx)

	if err := startCallback(ctx, log, eg); err != nil {
		return err
	}

	// Wait for the context to be done, which happens when the user sends a SIGTERM or SIGINT signal.
	<-ctx.Done()
	log.Info("Stopping app", "name", opts.name)

	return eg.Wait()
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}
