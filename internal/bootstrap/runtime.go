package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/hajzi/admin-console/config"
	"github.com/hajzi/admin-console/internal/adapters/memnav"
	"github.com/hajzi/admin-console/internal/adapters/tokenfile"
	"github.com/hajzi/admin-console/internal/api"
	"github.com/hajzi/admin-console/internal/guard"
	"github.com/hajzi/admin-console/internal/listctl"
	"github.com/hajzi/admin-console/internal/realtime"
	"github.com/hajzi/admin-console/internal/service"
	"github.com/hajzi/admin-console/internal/session"
)

// ServiceContainer holds one facade per backend resource.
type ServiceContainer struct {
	Users         *service.Users
	Photographers *service.Photographers
	Bookings      *service.Bookings
	Reviews       *service.Reviews
	Reports       *service.Reports
	Admins        *service.Admins
	Stats         *service.Stats
	Analytics     *service.Analytics
	Notifications *service.Notifications
}

// Runtime is the assembled client: shared HTTP client, session store, push
// bridge, route guard, and the resource services, wired in dependency order.
type Runtime struct {
	Config    config.AppConfig
	Logger    *slog.Logger
	Tokens    *tokenfile.Store
	Navigator *memnav.Navigator
	Client    *api.Client
	Sessions  *session.Store
	Bridge    *realtime.Bridge
	Guard     *guard.Guard
	Services  ServiceContainer
}

// NewRuntime wires the full client. The bridge is subscribed to the session
// store before anything else so the push channel always closes before later
// subscribers observe a sign-out.
func NewRuntime(cfg config.AppConfig, logger *slog.Logger) (*Runtime, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.API.UsedDefaultBaseURL() {
		logger.Warn("API_URL not set, falling back to default", "base_url", config.DefaultBaseURL)
	}

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		var err error
		tokenPath, err = tokenfile.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve token path: %w", err)
		}
	}
	tokens := tokenfile.New(tokenPath)
	navigator := memnav.New()

	client, err := api.New(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Tokens:    tokens,
		Navigator: navigator,
		Logger:    logger,
		Timeout:   cfg.API.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}

	sessions := session.New(session.Options{
		Client: client,
		Tokens: tokens,
		Logger: logger,
	})
	client.SetAuthFailureHook(sessions.Invalidate)

	bridge := realtime.New(realtime.Options{
		BaseURL:  cfg.API.BaseURL,
		Sessions: sessions,
		Dialer: &realtime.WebsocketDialer{
			HandshakeTimeout: cfg.Realtime.HandshakeTimeout,
			ReadLimit:        cfg.Realtime.ReadLimit,
		},
		Logger: logger,
	})
	bridge.Start()

	return &Runtime{
		Config:    cfg,
		Logger:    logger,
		Tokens:    tokens,
		Navigator: navigator,
		Client:    client,
		Sessions:  sessions,
		Bridge:    bridge,
		Guard:     guard.New(sessions),
		Services: ServiceContainer{
			Users:         service.NewUsers(client),
			Photographers: service.NewPhotographers(client),
			Bookings:      service.NewBookings(client),
			Reviews:       service.NewReviews(client),
			Reports:       service.NewReports(client),
			Admins:        service.NewAdmins(client),
			Stats:         service.NewStats(client),
			Analytics:     service.NewAnalytics(service.AnalyticsOptions{API: client}),
			Notifications: service.NewNotifications(client),
		},
	}, nil
}

// Shutdown releases long-lived resources. Idempotent.
func (r *Runtime) Shutdown() {
	r.Bridge.Stop()
}

// NewListController builds a controller for one screen with the configured
// page size and search debounce.
func NewListController[T any](cfg config.ListConfig, logger *slog.Logger, fetch listctl.Fetcher[T]) *listctl.Controller[T] {
	return listctl.New(listctl.Options[T]{
		Fetch:    fetch,
		Limit:    cfg.Limit,
		Debounce: cfg.SearchDebounce,
		Logger:   logger,
	})
}
