package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate"
	"github.com/SeamusWaldron/cubestate/internal/recorder"
	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var (
	newName    string
	newShuffle bool
	newMoves   int

	shuffleMoves int
	undoCount    int
	showID       string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new session with a solved cube",
	Long: `Start a new session and make it the active one.

Examples:
  cubestate new
  cubestate new --name practice --shuffle
  cubestate new --shuffle -n 5`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var turnCmd = &cobra.Command{
	Use:   "turn <moves...>",
	Short: "Turn faces of the active cube",
	Long: `Apply moves in standard notation to the active session. Each quarter
turn is committed separately, so R2 takes two undos.

Examples:
  cubestate turn R
  cubestate turn R R' U2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTurn,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Apply random Right-face turns",
	Args:  cobra.NoArgs,
	RunE:  runShuffle,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Step back through committed turns",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cube of a session",
	Long:  `Display the unfolded cube of the active session, or of --id.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newName, "name", "", "Name for this session")
	newCmd.Flags().BoolVar(&newShuffle, "shuffle", false, "Shuffle the cube after creating it")
	newCmd.Flags().IntVarP(&newMoves, "moves", "n", 0, "Shuffle length (default: shuffle_moves)")

	rootCmd.AddCommand(turnCmd)

	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().IntVarP(&shuffleMoves, "moves", "n", 0, "Number of turns (default: shuffle_moves)")

	rootCmd.AddCommand(undoCmd)
	undoCmd.Flags().IntVarP(&undoCount, "count", "n", 1, "Number of turns to undo")

	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showID, "id", "", "Session ID (default: active session)")

	rootCmd.AddCommand(deleteCmd)
}

func shuffleLength(n int) int {
	if n > 0 {
		return n
	}
	return cfg.ShuffleMoves
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateFile, err := loadStateFile()
	if err != nil {
		return err
	}

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}

	session, err := recorder.Start(ctx, db, newName, opts...)
	if err != nil {
		return err
	}

	if newShuffle || newMoves > 0 {
		moves, err := session.Shuffle(ctx, shuffleLength(newMoves))
		if err != nil {
			return fmt.Errorf("failed to shuffle: %w", err)
		}
		fmt.Fprintf(out, "Shuffled: %s\n", cubestate.FormatMoves(moves))
	}

	if err := stateFile.SetActiveSession(session.ID()); err != nil {
		return err
	}

	fmt.Fprintf(out, "Started session: %s\n", session.ID())
	fmt.Fprintln(out)
	printCube(out, session.Snapshot(), session.Depth())
	return nil
}

func runTurn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	moves, err := cubestate.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := openSession(ctx, db, "")
	if err != nil {
		return err
	}

	if err := session.Turn(ctx, moves...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Turned: %s\n", cubestate.FormatMoves(moves))
	fmt.Fprintln(out)
	printCube(out, session.Snapshot(), session.Depth())
	if session.IsSolved() {
		fmt.Fprintln(out, "Solved!")
	}
	return nil
}

func runShuffle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := openSession(ctx, db, "")
	if err != nil {
		return err
	}

	moves, err := session.Shuffle(ctx, shuffleLength(shuffleMoves))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Shuffled: %s\n", cubestate.FormatMoves(moves))
	fmt.Fprintln(out)
	printCube(out, session.Snapshot(), session.Depth())
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if undoCount < 1 {
		return fmt.Errorf("--count must be positive, got %d", undoCount)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := openSession(ctx, db, "")
	if err != nil {
		return err
	}

	undone := 0
	for undone < undoCount {
		err := session.Undo(ctx)
		if errors.Is(err, cubestate.ErrNothingToUndo) {
			fmt.Fprintln(out, "Nothing to undo, this is the starting state.")
			break
		}
		if err != nil {
			return err
		}
		undone++
	}

	if undone > 0 {
		fmt.Fprintf(out, "Undid %d move(s)\n", undone)
	}
	fmt.Fprintln(out)
	printCube(out, session.Snapshot(), session.Depth())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := openSession(ctx, db, showID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session: %s\n", session.ID())
	fmt.Fprintln(out)
	printCube(out, session.Snapshot(), session.Depth())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	row, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("%w: %s", recorder.ErrSessionNotFound, id)
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	stateFile, err := loadStateFile()
	if err != nil {
		return err
	}
	if stateFile.ActiveSessionID() == id {
		if err := stateFile.ClearActiveSession(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted session: %s\n", id)
	return nil
}
