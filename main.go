// Package main runs the Plexo marketing site: landing and feature pages,
// the ROI calculator and the demo request form, in English and Spanish.
package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/malamapl09/plexo-marketing/internal/config"
	"github.com/malamapl09/plexo-marketing/internal/handlers"
	"github.com/malamapl09/plexo-marketing/internal/i18n"
	"github.com/malamapl09/plexo-marketing/internal/leads"
	"github.com/malamapl09/plexo-marketing/internal/seo"
	"github.com/malamapl09/plexo-marketing/internal/server"
	"github.com/malamapl09/plexo-marketing/internal/tracing"
	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	// .env.local overrides .env; neither overrides the real environment
	// except through Overload.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		slog.Error("access static files", logger.Error(err))
		os.Exit(1)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(handlers.Static{FS: static}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Site
		i18n.Module,
		seo.Module,
		leads.Module,
		handlers.Module,
	).Run()
}
