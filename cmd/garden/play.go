package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-garden/internal/audio"
	"github.com/vovakirdan/tui-garden/internal/config"
	"github.com/vovakirdan/tui-garden/internal/core"
	"github.com/vovakirdan/tui-garden/internal/games/garden"
	"github.com/vovakirdan/tui-garden/internal/games/garden/sim"
	"github.com/vovakirdan/tui-garden/internal/platform/tui"
	"github.com/vovakirdan/tui-garden/internal/registry"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagLayout      string
	flagRanking     string
	flagRankingFile string
	flagMute        bool
	flagLogFile     string
	flagLogLevel    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Forgotten Garden.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  E/F/X            - Shoot
  Enter            - Continue / save name
  Esc/Backspace    - Back / delete a character
  P                - Pause
  R                - Play again (after a win or loss)
  Ctrl+S           - Save a screenshot to ~/.garden/screenshots
  Ctrl+Y           - Copy the screen to the clipboard
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, more time, slower enemies
  normal - The original tuning
  hard   - Fewer lives, less time, armored enemies on platforms
  fixed  - Enemy speed never progresses during a round

Examples:
  garden play
  garden play --difficulty easy
  garden play --layout procedural --seed 42
  garden play --ranking json --ranking-file ./ranking.json
  garden play --config ./my-garden.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Level layout: fixed, procedural (default from config)")
	playCmd.Flags().StringVar(&flagRanking, "ranking", "", "Ranking backend: sqlite, json (default from config)")
	playCmd.Flags().StringVar(&flagRankingFile, "ranking-file", "", "Path to the JSON ranking file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (default: XDG state dir)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	if flagLayout != "" && flagLayout != sim.LayoutFixed && flagLayout != sim.LayoutProcedural {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", flagLayout)
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(flagLogLevel, flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logFile.Close()

	gcfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	store, closeStore, err := openRanking(gcfg.Ranking, rankingOptions{
		backend: flagRanking,
		file:    flagRankingFile,
		dbPath:  flagDBPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ranking unavailable: %v\n", err)
		logger.Warn("ranking unavailable", "err", err)
	}
	defer closeStore()

	err = registry.Configure(garden.ID, garden.Factory(garden.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Layout:     flagLayout,
		Store:      store,
		Logger:     logger,
	}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring game: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(garden.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	player := audio.Silent()
	if !flagMute {
		player = audio.New(audio.DefaultVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		}
	}
	defer player.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty, "layout", flagLayout,
		"sound", player.Enabled())

	if err := tui.Run(game, cfg, tui.Options{Audio: player, Logger: logger, Local: true}); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
