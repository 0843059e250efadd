package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"aevonx/internal/adapters/backend"
	"aevonx/internal/adapters/cache"
	"aevonx/internal/adapters/rss"
	"aevonx/internal/api"
	"aevonx/internal/auth"
	"aevonx/internal/catalog"
	"aevonx/internal/config"
	"aevonx/internal/content"
	"aevonx/internal/handler"
	"aevonx/internal/order"
	httpserver "aevonx/internal/platform/http"
	"aevonx/internal/proxy"
	"aevonx/internal/refresh"
	"aevonx/internal/session"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the HTTP server and the
// background refreshers.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (initial catalogue and content loads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Session store
	sessions, err := session.NewStore(appCfg.Session.TokenFile)
	if err != nil {
		logrus.WithError(err).Error("Error loading session store")
		return err
	}
	logrus.Info("✅ Session store loaded")

	// Backend API client (configurable timeout)
	backendTimeout := time.Duration(appCfg.Backend.TimeoutSeconds) * time.Second
	if backendTimeout <= 0 {
		backendTimeout = 10 * time.Second
	}
	backendBaseURL := strings.TrimSuffix(appCfg.Backend.BaseURL, "/")
	backendClient := backend.NewClient(&http.Client{Timeout: backendTimeout}, backendBaseURL, sessions)

	// Route catalogue, served from the static fallback until the first
	// successful refresh.
	routeCatalog := catalog.NewService(backendClient, catalog.FallbackRoutes())
	if refreshErr := routeCatalog.Refresh(startupCtx); refreshErr != nil {
		logrus.WithError(refreshErr).Warn("Initial route refresh failed, serving fallback catalogue")
	} else {
		logrus.Info("✅ Route catalogue loaded")
	}

	// Content pages
	newsClient := rss.NewNewsClient(appCfg.Content.NewsFeedURL, 0)
	contentService := content.NewService(newsClient, backendClient)
	if refreshErr := contentService.Refresh(startupCtx); refreshErr != nil {
		logrus.WithError(refreshErr).Warn("Initial content refresh incomplete, serving fallback content")
	} else {
		logrus.Info("✅ Content loaded")
	}

	// Background refreshers
	refresher := refresh.NewRefresher(
		refresh.Job{
			Name:     "routes",
			Interval: time.Duration(appCfg.Catalog.RefreshSeconds) * time.Second,
			Run:      routeCatalog.Refresh,
		},
		refresh.Job{
			Name:     "content",
			Interval: time.Duration(appCfg.Content.RefreshSeconds) * time.Second,
			Run:      contentService.Refresh,
		},
	)
	defer func() {
		if shutDownErr := refresher.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Refresher shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := refresher.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start refresher")
		return startErr
	}
	logrus.Info("✅ Refresher activation successful")

	// Order cache
	orderCache, err := cache.NewOrderCache(
		appCfg.OrderCache.MaxItems,
		time.Duration(appCfg.OrderCache.TTLSeconds)*time.Second,
	)
	if err != nil {
		logrus.WithError(err).Error("Error creating order cache")
		return err
	}
	defer orderCache.Close()

	// Services
	orderService := order.NewService(backendClient, orderCache)
	authService := auth.NewService(backendClient, sessions)

	// Handlers and router
	exchangeHandler := handler.NewExchangeHandler(routeCatalog, orderService)
	contentHandler := handler.NewContentHandler(contentService)
	authHandler := handler.NewAuthHandler(authService)
	supportHandler := handler.NewSupportHandler(backendClient)
	proxyHandler := proxy.NewHandler(backendBaseURL, backendTimeout)
	router := api.NewRouter(exchangeHandler, contentHandler, authHandler, supportHandler, proxyHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop refreshers and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
