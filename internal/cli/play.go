package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/recorder"
	"github.com/SeamusWaldron/cubestate/internal/tui"
)

var (
	playResume    bool
	playEphemeral bool
	playMoves     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a shuffled game in the terminal. Keys:

  r  turn Right clockwise
  R  turn Right counter-clockwise
  s  shuffle
  u  undo
  q  quit

The game ends when the cube is solved. Games are saved as sessions unless
--ephemeral is set; --resume continues the active session instead.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playResume, "resume", false, "Continue the active session")
	playCmd.Flags().BoolVar(&playEphemeral, "ephemeral", false, "Play without saving a session")
	playCmd.Flags().IntVarP(&playMoves, "moves", "n", 0, "Shuffle length (default: shuffle_moves)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if playResume && playEphemeral {
		return fmt.Errorf("--resume and --ephemeral cannot be combined")
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}

	var puzzle tui.Puzzle
	if playEphemeral {
		engine := cubestate.New(opts...)
		if _, err := engine.Shuffle(shuffleLength(playMoves)); err != nil {
			return err
		}
		puzzle = tui.EnginePuzzle{Engine: engine}
	} else {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		var session *recorder.Session
		if playResume {
			session, err = openSession(ctx, db, "")
			if err != nil {
				return err
			}
		} else {
			session, err = recorder.Start(ctx, db, "play", opts...)
			if err != nil {
				return err
			}
			if _, err := session.Shuffle(ctx, shuffleLength(playMoves)); err != nil {
				return err
			}
			stateFile, err := loadStateFile()
			if err != nil {
				return err
			}
			if err := stateFile.SetActiveSession(session.ID()); err != nil {
				return err
			}
		}
		puzzle = session
	}

	model := tui.New(ctx, puzzle, cfg.Color, cfg.ShuffleMoves)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Won() {
		fmt.Fprintln(out, "Solved!")
	}
	return nil
}
