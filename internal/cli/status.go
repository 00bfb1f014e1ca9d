package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var listLimit int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and active session information",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	stateFile, err := loadStateFile()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "cubestate status")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Database: %s\n", cfg.DBPath)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	last, err := repo.GetLast(ctx)
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(out, "Last played: %s\n", last.UpdatedAt.Local().Format(time.RFC3339))
	}
	sessions, err := repo.List(ctx, -1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total sessions: %d\n", len(sessions))
	fmt.Fprintln(out)

	if !stateFile.HasActiveSession() {
		fmt.Fprintln(out, "No active session")
		fmt.Fprintln(out, "  (Use 'cubestate new' to start one)")
		return nil
	}

	session, err := openSession(ctx, db, stateFile.ActiveSessionID())
	if err != nil {
		return err
	}
	state := "scrambled"
	if session.IsSolved() {
		state = "solved"
	}
	fmt.Fprintf(out, "Active session: %s\n", session.ID())
	fmt.Fprintf(out, "  Cube: %s\n", state)
	fmt.Fprintf(out, "  Moves to undo: %d\n", session.Depth())
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
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

	sessions, err := storage.NewSessionRepository(db).List(ctx, listLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		fmt.Fprintln(out, "Start a new session with: cubestate new")
		return nil
	}

	snapshots := storage.NewSnapshotRepository(db)

	fmt.Fprintf(out, "Recent sessions (showing %d):\n", len(sessions))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-36s  %-20s  %-6s  %s\n", "ID", "Updated", "Moves", "Name")
	fmt.Fprintln(out, "------------------------------------  --------------------  ------  ----")

	for _, s := range sessions {
		count, err := snapshots.Count(ctx, s.SessionID)
		if err != nil {
			return err
		}

		name := ""
		if s.Name != nil {
			name = *s.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
		}

		active := ""
		if s.SessionID == stateFile.ActiveSessionID() {
			active = " (active)"
		}

		// The floor snapshot is not a move.
		fmt.Fprintf(out, "%-36s  %-20s  %-6d  %s%s\n",
			s.SessionID,
			s.UpdatedAt.Local().Format("2006-01-02 15:04:05"),
			count-1,
			name,
			active,
		)
	}

	return nil
}
