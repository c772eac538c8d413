package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagRate        float64
	flagBurst       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own clock; sessions never
share state. The global --config, --preset, --side and --wrap flags set the
game every session plays.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --metrics :9100           # Expose Prometheus metrics
  snake serve --rate 0.5 --burst 3      # Stricter per-host connection limit

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Address to serve Prometheus metrics on (disabled if empty)")
	serveCmd.Flags().Float64Var(&flagRate, "rate", 1, "New connections per second allowed from one host")
	serveCmd.Flags().IntVar(&flagBurst, "burst", 5, "Connection burst allowed from one host")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		MetricsAddress: flagMetricsAddr,
		Rate:           flagRate,
		Burst:          flagBurst,
		Game:           game,
		Seed:           game.Seed,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
