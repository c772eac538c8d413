package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD - Steer
  Enter       - Start
  P/Esc       - Pause (resume, restart or read how to play)
  C           - Switch between walls and wrap-around edges
  R           - Restart
  ?           - How to play
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --preset easy
  snake play --side 20 --wrap
  snake play --log-file ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	needW := cfg.Grid.Side*cfg.Grid.CellWidth + 2
	needH := cfg.Grid.Side + 5
	if width < needW || height < needH {
		fitSide := min((width-2)/cfg.Grid.CellWidth, height-5)
		return fmt.Errorf("terminal is %dx%d but a %d-cell grid needs %dx%d; enlarge the window or try --side %d",
			width, height, cfg.Grid.Side, needW, needH, max(fitSide, 1))
	}

	opts := tui.Options{}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()

		opts.Logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake",
			Level:           log.DebugLevel,
		})
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    cfg.Seed,
	}

	if err := tui.Run(cfg, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
