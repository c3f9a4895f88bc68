package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llmgateway/internal/config"
	"llmgateway/internal/httpapi"
	"llmgateway/internal/logging"
	"llmgateway/internal/manager"
)

func main() {
	if err := newRootCmd(os.Getenv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "llmgateway:", err)
		os.Exit(1)
	}
}

// newRootCmd wires flags over config file and environment. Precedence:
// built-in defaults < config file < environment < explicitly set flags.
func newRootCmd(getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "llmgateway",
		Short:         "HTTP gateway for local code-assistant language models",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	f := cmd.Flags()
	f.String("config", getenv("LLMGW_CONFIG"), "Path to YAML/JSON/TOML config file (defaults LLMGW_CONFIG)")
	f.String("host", "", "Listen host (default 0.0.0.0)")
	f.Int("port", 0, "Listen port (default 5000)")
	f.Bool("debug", false, "Enable debug logging")
	f.String("log-level", "", "Log level: debug|info|warn|error")
	f.String("log-file", "", "Also write JSON logs to this rotating file")
	f.String("daemon-url", "", "Inference daemon base URL (defaults OLLAMA_HOST or http://localhost:11434)")
	f.String("cors-origins", "", "Comma-separated allowed CORS origins (default *)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, getenv)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	}
	return cmd
}

// resolveConfig builds the effective configuration from all sources.
func resolveConfig(cmd *cobra.Command, getenv func(string) string) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	if f.Changed("host") {
		cfg.Host, _ = f.GetString("host")
	}
	if f.Changed("port") {
		cfg.Port, _ = f.GetInt("port")
	}
	if f.Changed("debug") {
		cfg.Debug, _ = f.GetBool("debug")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("log-file") {
		cfg.LogFile, _ = f.GetString("log-file")
	}
	if f.Changed("daemon-url") {
		cfg.DaemonURL, _ = f.GetString("daemon-url")
	}
	if f.Changed("cors-origins") {
		v, _ := f.GetString("cors-origins")
		cfg.CORS.AllowedOrigins = splitCSV(v)
	}
	return cfg, nil
}

func serve(parent context.Context, cfg config.Config) error {
	// Fail fast on configuration errors
	reg, err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := logging.New(loggingConfig(cfg), os.Stderr)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Registry:      reg,
		DaemonURL:     cfg.DaemonURL,
		DaemonTimeout: time.Duration(cfg.DaemonTimeoutSeconds) * time.Second,
		ProbeTimeout:  time.Duration(cfg.ProbeTimeoutSeconds) * time.Second,
		LlamaCtx:      cfg.LlamaCtx,
		LlamaThreads:  cfg.LlamaThreads,
		Logger:        &logger,
	})
	defer func() {
		if err := mgr.Close(); err != nil {
			logger.Error().Err(err).Msg("free models")
		}
	}()
	// Missing runtime or model files are warnings, never fatal.
	mgr.LogSanity()

	// Configure HTTP layer before building the mux
	httpapi.SetLogger(logger)
	if cfg.Debug {
		httpapi.SetRequestLogLevel("debug")
	}
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.AllowedOrigins, nil, nil)

	// Base context for handlers; canceled on shutdown so in-flight generations stop.
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(mgr, httpapi.Routes(cfg.Routes))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	logBanner(logger, cfg)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down")
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

func loggingConfig(cfg config.Config) logging.Config {
	return logging.Config{
		Level:      cfg.LogLevel,
		Debug:      cfg.Debug,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	}
}

func logBanner(l zerolog.Logger, cfg config.Config) {
	l.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("daemon", cfg.DaemonURL).
		Msg("llmgateway listening")
	l.Info().Strs("endpoints", httpapi.Endpoints).Msg("available endpoints")
	for _, m := range cfg.Models {
		l.Info().Str("model", m.Key).Str("backend", m.Backend).Str("use_case", m.UseCase).Msg("registered model")
	}
}

// splitCSV splits a comma-separated list, dropping empty items.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
