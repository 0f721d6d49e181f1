package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"dashboard-theme/internal/auth"
	"dashboard-theme/internal/config"
	"dashboard-theme/internal/export"
	"dashboard-theme/internal/server"
	"dashboard-theme/internal/theme"
	"dashboard-theme/internal/ui"
)

const version = "v1.0.0"

func main() {
	// Load .env file if it exists
	// We ignore the error because in production/docker we might relying on system env vars
	_ = godotenv.Load()

	ui.PrintBanner(version, "Dashboard theme assets")
	ui.LogSection("Configuration")

	cfg, err := config.Load()
	if err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
	ui.SetDebug(cfg.Env.Debug)

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	t := theme.Default()
	if err := t.Validate(); err != nil {
		ui.ErrorNote(err.Error())
		os.Exit(1)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	handler, err := server.NewHandler(t, opts)
	if err != nil {
		ui.LogStatus("error", "Render theme: "+err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if opts.Keys != nil {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go reloadKeysOnHangup(ctx, hup, opts.Keys, cfg.KeysFile)
	}

	ui.LogSection("Serving")

	if cfg.MetricsListen != "" {
		metrics := server.NewMetricsServer(cfg.MetricsListen)
		metrics.Start()
		ui.LogStatus("info", "Metrics: "+ui.FormatURL(ui.LocalURL(cfg.MetricsListen, "/metrics")))

		go func() {
			<-ctx.Done()
			ui.LogStatus("info", "Shutting down")
			metrics.Shutdown(context.Background())
		}()
	}

	ui.LogGroup("Assets")
	for _, f := range export.Formats() {
		ui.LogGroupItem(string(f), ui.LocalURL(cfg.Listen, "/theme."+string(f)))
	}
	ui.LogGroupItem("tokens", ui.LocalURL(cfg.Listen, "/tokens/{path}"))
	ui.LogGroupEnd()
	ui.LogMetric("Tokens", len(t.Tokens()), "values")

	srv := server.NewServer(cfg.Listen, handler)
	if err := srv.Start(ctx); err != nil {
		ui.LogStatus("error", "Server failed: "+err.Error())
		os.Exit(1)
	}
	ui.LogStatus("success", "Stopped")
	ui.PrintSeparator()
	ui.PrintFooter("Theme server " + version + " stopped cleanly")
}

type keyReloader interface {
	LoadFromFile(path string) error
	Count() int
}

// reloadKeysOnHangup reloads the keys file on every signal from hup until ctx
// is done. A failed reload keeps the previous keys.
func reloadKeysOnHangup(ctx context.Context, hup <-chan os.Signal, keys keyReloader, path string) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := keys.LoadFromFile(path); err != nil {
				ui.LogStatus("warning", "Keys reload failed, keeping previous keys: "+err.Error())
				continue
			}
			ui.LogStatus("success", fmt.Sprintf("Reloaded %d API keys", keys.Count()))
		}
	}
}

func buildOptions(cfg *config.Config) (server.Options, error) {
	opts := server.Options{
		CacheMaxAge:       time.Duration(cfg.CacheMaxAgeSec) * time.Second,
		AllowedOrigin:     cfg.AllowedOrigin,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
		Limiter:           auth.NewRateLimiter(cfg.RateLimitRPM),
	}

	allow, err := auth.NewAllowlist(cfg.IPAllowlist)
	if err != nil {
		return server.Options{}, err
	}
	opts.Allowlist = allow
	if allow.Len() > 0 {
		ui.LogStatus("info", "IP allowlist: "+ui.Accent("%d networks", allow.Len()))
	}

	if cfg.AuthEnabled() {
		keys, err := auth.NewKeyStore(cfg.KeysFile)
		if err != nil {
			return server.Options{}, err
		}
		opts.Keys = keys
		ui.LogStatus("info", "API keys: "+ui.Accent("%d enabled", keys.Count()))
	} else {
		ui.LogStatus("debug", "API key gate disabled")
	}

	return opts, nil
}
