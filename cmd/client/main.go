package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/pizzahouse/menu-client/internal/alert"
	"github.com/pizzahouse/menu-client/internal/collection"
	"github.com/pizzahouse/menu-client/internal/config"
	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/httpserver"
	"github.com/pizzahouse/menu-client/internal/logging"
	"github.com/pizzahouse/menu-client/internal/media"
	"github.com/pizzahouse/menu-client/internal/override"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "menu-client")
	slog.SetDefault(logger)

	store, err := override.Open(cfg.OverrideDBPath)
	if err != nil {
		log.Fatalf("override store: %v", err)
	}

	objects, err := media.NewFSStore(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		log.Fatalf("media store: %v", err)
	}

	gw := gateway.NewClient(cfg.APIBaseURL)
	banner := alert.NewBanner(alert.DefaultTTL)
	products := collection.NewProducts(gw)
	orders := collection.NewOrders(gw, store)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := products.Load(loadCtx); err != nil {
		banner.Set(alert.KindFault, "Failed to fetch products")
		logger.Error("products_load_failed", "error", err)
	}
	if err := orders.Load(loadCtx); err != nil {
		banner.Set(alert.KindFault, "Failed to fetch orders")
		logger.Error("orders_load_failed", "error", err)
	}
	loadCancel()

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(httpserver.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Static(cfg.MediaBaseURL, cfg.MediaDir)

	httpserver.Register(e, &httpserver.Deps{
		Gateway:   gw,
		Products:  products,
		Orders:    orders,
		Media:     objects,
		Banner:    banner,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("menu-client listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	banner.Close()
	_ = store.Close()

	log.Println("menu-client stopped")
}
