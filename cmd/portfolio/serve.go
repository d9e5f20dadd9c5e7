package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio"
)

func runServe() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("portfolio: reading .env: %v", err)
	}

	cfg := portfolio.ConfigFromEnv()
	if cfg.CookieSecure {
		// A random per-process key would drop flashes across restarts and replicas.
		cfg.SessionSecret = portfolio.MustEnv("SESSION_SECRET")
	}
	app := portfolio.New(cfg, serveOptions()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("portfolio: graceful shutdown: %v", err)
		return app.Close()
	}
	return nil
}

// serveOptions are the App options the serve command adds to the config.
func serveOptions() []portfolio.Option {
	return []portfolio.Option{
		portfolio.WithStaticDir(portfolio.EnvOr("STATIC_DIR", "public")),
		portfolio.WithCustomRoutes(func(a *portfolio.App) {
			a.Echo.GET(a.Config.APIPrefix+"/version", func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"version": version})
			})
		}),
	}
}
