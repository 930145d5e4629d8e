package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/todo-client/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/todo-client/internal/adapters/http"
	"github.com/jsamuelsen11/todo-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-client/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-client/internal/app"
	"github.com/jsamuelsen11/todo-client/internal/platform/config"
	"github.com/jsamuelsen11/todo-client/internal/platform/health"
	"github.com/jsamuelsen11/todo-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-client/internal/ports"
)

func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.ServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TodoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		return do.MustInvoke[*acl.TodoClient](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoBoard, error) {
		client := do.MustInvoke[ports.TodoClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoard(client, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New(health.WithCheckTimeout(cfg.Client.Timeout))
		registry.Register(do.MustInvoke[*acl.TodoClient](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		board := do.MustInvoke[ports.TodoBoard](i)
		return handlers.NewBoardHandler(board, cfg.UI.Location(), cfg.UI.NoticeTTL), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.NavHandler, error) {
		return handlers.NewNavHandler(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		navH := do.MustInvoke[*handlers.NavHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(boardH, navH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
