package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sun/sungo/internal/api"
	"github.com/sun/sungo/internal/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	addr := os.Getenv("SUNGO_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	defaults, err := loadDefaults(logger)
	if err != nil {
		logger.Error("invalid defaults configuration", "error", err)
		os.Exit(1)
	}

	trustProxy := false
	if v := os.Getenv("SUNGO_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid SUNGO_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			trustProxy = b
		}
	}

	srv := api.NewServer(addr, logger, authCfg, defaults, trustProxy)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", addr, "auth_enabled", authCfg.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("SUNGO_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("SUNGO_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Token = os.Getenv("SUNGO_AUTH_TOKEN")
		if cfg.Token == "" {
			return cfg, errors.New("SUNGO_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}

// defaultsFile mirrors api.Defaults for the optional YAML config file.
type defaultsFile struct {
	PressureMb   *float64 `yaml:"pressure_mb"`
	TemperatureC *float64 `yaml:"temperature_c"`
	ElevationM   *float64 `yaml:"elevation_m"`
	DeltaT       *float64 `yaml:"delta_t"`
	H0Prime      *float64 `yaml:"h0"`
}

// loadDefaults builds the per-request fallbacks for observer parameters.
// Precedence: built-ins, then the YAML file named by SUNGO_CONFIG, then
// SUNGO_* environment variables.
func loadDefaults(logger *slog.Logger) (api.Defaults, error) {
	cfg := api.Defaults{
		PressureMb:   1013.25,
		TemperatureC: 15,
		ElevationM:   0,
		DeltaT:       69,
		H0Prime:      -0.8333,
	}

	if path := os.Getenv("SUNGO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
		var file defaultsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if file.PressureMb != nil {
			cfg.PressureMb = *file.PressureMb
		}
		if file.TemperatureC != nil {
			cfg.TemperatureC = *file.TemperatureC
		}
		if file.ElevationM != nil {
			cfg.ElevationM = *file.ElevationM
		}
		if file.DeltaT != nil {
			cfg.DeltaT = *file.DeltaT
		}
		if file.H0Prime != nil {
			cfg.H0Prime = *file.H0Prime
		}
		logger.Info("loaded defaults file", "path", path)
	}

	envFloat(logger, "SUNGO_DEFAULT_PRESSURE", &cfg.PressureMb)
	envFloat(logger, "SUNGO_DEFAULT_TEMPERATURE", &cfg.TemperatureC)
	envFloat(logger, "SUNGO_DEFAULT_ELEVATION", &cfg.ElevationM)
	envFloat(logger, "SUNGO_DEFAULT_DELTA_T", &cfg.DeltaT)
	envFloat(logger, "SUNGO_DEFAULT_H0", &cfg.H0Prime)

	logger.Info("observer defaults",
		"pressure_mb", cfg.PressureMb,
		"temperature_c", cfg.TemperatureC,
		"elevation_m", cfg.ElevationM,
		"delta_t", cfg.DeltaT,
		"h0", cfg.H0Prime,
	)

	return cfg, nil
}

func envFloat(logger *slog.Logger, name string, dst *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Warn("invalid float value, keeping default", "var", name, "value", v, "default", *dst)
		return
	}
	*dst = f
}
