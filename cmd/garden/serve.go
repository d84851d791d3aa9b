package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/games/garden"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
	"github.com/vovakirdan/tui-garden/internal/ranking"
	"github.com/vovakirdan/tui-garden/internal/registry"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeConfig     string
	flagServeRanking    string
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the garden SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. All players share the server's
ranking, and sound is disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.garden/host_key

Examples:
  garden serve                           # Listen on :23234 with auto-generated key
  garden serve --ssh :2222               # Listen on port 2222
  garden serve --host-key ./my_host_key  # Use specific host key
  garden serve --db ./ranking.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServeRanking, "ranking", "", "Ranking backend: sqlite, json (default from config)")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "garden-ssh",
	})

	gcfg, err := config.LoadGarden(flagServeConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}

	store, closeStore, err := openRanking(gcfg.Ranking, rankingOptions{
		backend: flagServeRanking,
		dbPath:  flagDBPath,
	})
	if err != nil {
		// Continue with a ranking that lives as long as the server
		logger.Warn("ranking unavailable, keeping it in memory", "err", err)
		store = &ranking.MemoryStore{}
	}
	defer closeStore()

	err = registry.Configure(garden.ID, garden.Factory(garden.Options{
		ConfigPath: flagServeConfig,
		Difficulty: flagServeDifficulty,
		Store:      store,
		Logger:     logger,
	}))
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error configuring game: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting garden SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
