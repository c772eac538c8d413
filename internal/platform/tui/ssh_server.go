package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/ratelimiter"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MetricsAddress serves Prometheus metrics when set (e.g., ":9100").
	MetricsAddress string

	// Rate and Burst limit new connections per remote host.
	Rate  float64
	Burst int

	// Game is the configuration every session plays with.
	Game config.SnakeConfig

	// Seed fixes food placement for every session. Zero means time-based.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Rate:        1,
		Burst:       5,
		Game:        config.DefaultSnakeConfig(),
	}
}

// maxRateEntries bounds how many remote hosts the rate limiter remembers.
const maxRateEntries = 1000

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	http    *http.Server
	metrics *Metrics
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	if cfg.Burst < 1 {
		return nil, fmt.Errorf("ssh: burst must be at least 1, got %d", cfg.Burst)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-ssh",
	})

	srv := &SSHServer{
		config:  cfg,
		metrics: NewMetrics(),
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", mkdirErr)
	}

	limiter := ratelimiter.NewRateLimiter(rate.Limit(cfg.Rate), cfg.Burst, maxRateEntries)

	// Middlewares run last to first: the rate limiter sees a connection before
	// anything else does.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
			ratelimiter.Middleware(limiter),
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	srv.server = server

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", srv.metrics.Handler())
		srv.http = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return srv, nil
}

// teaHandler creates a fresh game, clock and model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    s.config.Seed,
	}

	model := NewModel(s.config.Game, rt, Options{
		Logger:  s.logger.With("user", sshSession.User()),
		Metrics: s.metrics,
	})

	// The clock outlives the program if the client just drops the connection.
	go func() {
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events and tracks active sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		started := time.Now()

		s.metrics.SessionStarted()
		s.logger.Info("session started",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)

		next(sshSession)

		s.metrics.SessionEnded()
		s.logger.Info("session ended",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 2)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- fmt.Errorf("ssh: %w", err)
		}
	}()

	if s.http != nil {
		s.logger.Info("serving metrics", "address", s.config.MetricsAddress)
		go func() {
			if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("metrics: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-done:
	case serveErr = <-errc:
		s.logger.Error("server error", "error", serveErr)
	}

	s.logger.Info("shutting down...")
	return errors.Join(serveErr, s.Shutdown())
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics: shutdown: %w", err))
		}
	}
	if err := s.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("ssh: shutdown: %w", err))
	}
	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Metrics returns the server's metrics.
func (s *SSHServer) Metrics() *Metrics {
	return s.metrics
}
