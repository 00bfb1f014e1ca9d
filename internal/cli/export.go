package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubestate/internal/storage"
)

var (
	exportSessionID string
	exportFormat    string
	exportOutput    string
	exportLast      bool
)

// sessionExport is the document written by the json and yaml formats.
type sessionExport struct {
	SessionID string           `json:"session_id" yaml:"session_id"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" yaml:"updated_at"`
	Snapshots []snapshotExport `json:"snapshots" yaml:"snapshots"`
}

type snapshotExport struct {
	Seq      int    `json:"seq" yaml:"seq"`
	Move     string `json:"move,omitempty" yaml:"move,omitempty"`
	Facelets string `json:"facelets" yaml:"facelets"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a session's history",
	Long: `Export the snapshot history of a session.

The txt format is the move sequence; json and yaml include every snapshot
as a 54-letter facelet string (faces U D F B L R, each row-major).

Examples:
  cubestate export
  cubestate export --last --format yaml
  cubestate export --id <session_id> --format json -o history.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportSessionID, "id", "", "Session ID to export (default: active session)")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the most recently played session")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionRepo := storage.NewSessionRepository(db)

	// Get session
	var session *storage.Session
	if exportLast {
		session, err = sessionRepo.GetLast(ctx)
		if err != nil {
			return fmt.Errorf("failed to get last session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("no sessions found")
		}
	} else {
		id, err := resolveSessionID(exportSessionID)
		if err != nil {
			return err
		}
		session, err = sessionRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if session == nil {
			return fmt.Errorf("session not found: %s", id)
		}
	}

	records, err := storage.NewSnapshotRepository(db).List(ctx, session.SessionID)
	if err != nil {
		return fmt.Errorf("failed to get snapshots: %w", err)
	}

	// Format output
	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		var notations []string
		for _, r := range records {
			if r.Move != nil {
				notations = append(notations, *r.Move)
			}
		}
		output = strings.Join(notations, " ")

	case "json", "yaml", "yml":
		doc := sessionExport{
			SessionID: session.SessionID,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
			Snapshots: make([]snapshotExport, 0, len(records)),
		}
		if session.Name != nil {
			doc.Name = *session.Name
		}
		for _, r := range records {
			snap := snapshotExport{Seq: r.Seq, Facelets: r.Facelets}
			if r.Move != nil {
				snap.Move = *r.Move
			}
			doc.Snapshots = append(doc.Snapshots, snap)
		}

		var data []byte
		if strings.ToLower(exportFormat) == "json" {
			data, err = json.MarshalIndent(doc, "", "  ")
		} else {
			data, err = yaml.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", exportFormat, err)
		}
		output = strings.TrimRight(string(data), "\n")

	default:
		return fmt.Errorf("unknown format: %s (use txt, json or yaml)", exportFormat)
	}

	// Write output
	if exportOutput == "" {
		fmt.Fprintln(out, output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(out, "Exported %d snapshots to %s\n", len(records), exportOutput)
	return nil
}
