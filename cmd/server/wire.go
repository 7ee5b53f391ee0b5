package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/auth"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/clients/objectstore"
	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/app"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/health"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// newContainer registers every provider. Nothing is built until the server
// is invoked.
func newContainer(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	provideOutbound(injector, cfg, logger)
	provideServices(injector, cfg, logger)
	provideHTTP(injector, cfg, logger)
	return injector
}

// provideOutbound registers the sqlite store, the S3 object store behind the
// resilient transport, and the fence time zone.
func provideOutbound(i do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(cfg.Database.Path, cfg.Database.BusyTimeout)
	})
	do.Provide(i, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, "object-store", do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.ObjectStore, error) {
		return objectstore.New(cfg.Storage, do.MustInvoke[*httpclient.Client](i), logger), nil
	})
	do.Provide(i, func(do.Injector) (*time.Location, error) {
		loc, err := time.LoadLocation(cfg.Fence.Timezone)
		if err != nil {
			return nil, fmt.Errorf("fence timezone %q: %w", cfg.Fence.Timezone, err)
		}
		return loc, nil
	})
	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func provideServices(i do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(i do.Injector) (ports.AuthService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAuthService(store,
			auth.NewBcryptHasher(cfg.Auth.BcryptCost),
			auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL),
			cfg.Org.DefaultID, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		stores := app.TaskStores{Tasks: store, Assignments: store, Attachments: store, Comments: store, Users: store}
		return app.NewTaskService(stores, do.MustInvoke[ports.ObjectStore](i), app.TaskOptions{
			OrgID:             cfg.Org.DefaultID,
			PresignTTL:        cfg.Storage.PresignTTL,
			UploadConcurrency: cfg.Upload.Concurrency,
			Location:          do.MustInvoke[*time.Location](i),
			Metrics:           do.MustInvoke[*telemetry.Metrics](i),
		}, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.AssignmentService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAssignmentService(store, store, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.CommentService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewCommentService(store, store, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.AttachmentService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewAttachmentService(store, store, do.MustInvoke[ports.ObjectStore](i),
			cfg.Storage.PresignTTL, cfg.Upload.Concurrency, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.HandoverService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewHandoverService(store, store, store, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.SurveyService, error) {
		return app.NewSurveyService(do.MustInvoke[*sqlite.Store](i), cfg.Org.DefaultID, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.EventService, error) {
		return app.NewEventService(do.MustInvoke[*sqlite.Store](i), cfg.Fence.RadiusMeters,
			do.MustInvoke[*time.Location](i), do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})
}

func provideHTTP(i do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		authSvc := do.MustInvoke[ports.AuthService](i)
		limits := handlers.UploadLimits{MaxMemory: cfg.Upload.MaxMemory, MaxFiles: cfg.Upload.MaxFiles}
		h := adapthttp.Handlers{
			Auth:       handlers.NewAuthHandler(authSvc),
			Task:       handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i), limits),
			Assignment: handlers.NewAssignmentHandler(do.MustInvoke[ports.AssignmentService](i)),
			Comment:    handlers.NewCommentHandler(do.MustInvoke[ports.CommentService](i)),
			Attachment: handlers.NewAttachmentHandler(do.MustInvoke[ports.AttachmentService](i), limits),
			Handover:   handlers.NewHandoverHandler(do.MustInvoke[ports.HandoverService](i)),
			Survey:     handlers.NewSurveyHandler(do.MustInvoke[ports.SurveyService](i)),
			Event:      handlers.NewEventHandler(do.MustInvoke[ports.EventService](i)),
			Health:     handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		stack := middleware.Stack(middleware.StackConfig{
			Logger:        logger,
			Metrics:       do.MustInvoke[*telemetry.Metrics](i),
			Timeout:       cfg.Server.WriteTimeout,
			UploadTimeout: cfg.Upload.Timeout,
		})
		return adapthttp.NewRouter(h, middleware.Authenticate(authSvc), stack...), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
