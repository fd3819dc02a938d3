package app

import (
	"context"
	"fmt"

	corebootstrap "github.com/SummitSummer/zzxc/core/bootstrap"
	"github.com/SummitSummer/zzxc/core/logger"
	coretelegram "github.com/SummitSummer/zzxc/core/telegram"
	"github.com/SummitSummer/zzxc/core/telegram/router"
	"github.com/SummitSummer/zzxc/core/telegram/state"
	"github.com/SummitSummer/zzxc/flow"
	"github.com/SummitSummer/zzxc/orders"

	tele "gopkg.in/telebot.v4"
)

const accessDeniedText = "❌ У вас нет доступа к этой команде."

// App is the assembled bot: domain services plus conversation wiring.
type App struct {
	cfg      *Config
	fsm      state.Manager
	svc      *flow.Service
	handlers *flow.Handlers
	notifier *flow.Notifier
}

// Bootstrap initializes infrastructure (logger, optional archive DB) and
// builds the domain services on top of it.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	boot, err := corebootstrap.Run(corebootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Core.Telegram.AdminID == 0 {
		logger.Warn(logger.Background(), "app", "config.operator.unset")
	}

	catalog, err := orders.NewCatalog(cfg.Plans)
	if err != nil {
		return nil, err
	}

	svc := flow.NewService(
		orders.NewLedger(),
		catalog,
		orders.NewLinkBuilder(cfg.Payment.BaseURL),
		orders.NewArchive(boot.DB),
	)
	notifier := flow.NewNotifier(cfg.Core.Telegram.AdminID)
	fsm := state.NewMemoryManager(nil)

	return &App{
		cfg:      cfg,
		fsm:      fsm,
		svc:      svc,
		handlers: flow.NewHandlers(svc, fsm, notifier, cfg.Menu.Image),
		notifier: notifier,
	}, nil
}

// TelegramRunOptions wires registry, routes and middleware for RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.handlers.Register(reg)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
		OnAdminReject: func(c tele.Context) error {
			return c.Send(accessDeniedText)
		},
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.fsm, reg, router.TextOptions{})...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			_ = a.notifier.NotifyStartup(ctx, rt.Bot)
			return nil
		},
	}, nil
}
