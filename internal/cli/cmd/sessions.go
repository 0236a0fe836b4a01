package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/cli"
	"github.com/bnema/kiosk/internal/cli/styles"
	"github.com/bnema/kiosk/internal/logging"
)

const defaultSessionsLimit = 20

var (
	sessionsJSON  bool
	sessionsLimit int
	sessionsYes   bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the kiosk session journal",
	Long: `Show when kiosk sessions started and why they were reset.

A new session starts at launch, when a visitor presses "I'm Finished" and
when the inactivity timer expires. The journal stores timing and reason
only, never URLs or page content.`,
	Args: cobra.NoArgs,
	RunE: runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ended sessions and their archived logs",
	Args:  cobra.NoArgs,
	RunE:  runSessionsClear,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd, sessionsClearCmd)

	for _, c := range []*cobra.Command{sessionsCmd, sessionsListCmd} {
		c.Flags().IntVarP(&sessionsLimit, "limit", "n", defaultSessionsLimit, "number of sessions to show")
		c.Flags().BoolVar(&sessionsJSON, "json", false, "print sessions as JSON")
	}
	sessionsClearCmd.Flags().BoolVarP(&sessionsYes, "yes", "y", false, "skip confirmation")
}

// sessionJSON is the stable --json shape.
type sessionJSON struct {
	ID        string     `json:"id"`
	Sequence  int        `json:"sequence"`
	Reason    string     `json:"reason"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Seconds   float64    `json:"duration_seconds,omitempty"`
}

func listSessionsUseCase() (*usecase.ListSessionsUseCase, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	journal, err := app.Journal()
	if err != nil {
		return nil, err
	}
	return usecase.NewListSessionsUseCase(journal), nil
}

func runSessionsList(_ *cobra.Command, _ []string) error {
	renderer := styles.NewSessionsCLIRenderer(app.Theme)

	uc, err := listSessionsUseCase()
	if errors.Is(err, cli.ErrJournalDisabled) {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err != nil {
		return err
	}

	summary, err := uc.Execute(app.Ctx(), sessionsLimit)
	if err != nil {
		return err
	}

	if sessionsJSON {
		out := make([]sessionJSON, 0, len(summary.Sessions))
		for _, s := range summary.Sessions {
			item := sessionJSON{
				ID:        string(s.ID),
				Sequence:  s.Sequence,
				Reason:    string(s.Reason),
				StartedAt: s.StartedAt,
				EndedAt:   s.EndedAt,
			}
			if s.EndedAt != nil {
				item.Seconds = s.Duration().Seconds()
			}
			out = append(out, item)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if summary.TotalCount == 0 {
		fmt.Println(renderer.RenderEmptyList())
		return nil
	}
	fmt.Print(renderer.RenderList(summary, sessionsLimit))
	return nil
}

func runSessionsClear(_ *cobra.Command, _ []string) error {
	renderer := styles.NewSessionsCLIRenderer(app.Theme)

	uc, err := listSessionsUseCase()
	if errors.Is(err, cli.ErrJournalDisabled) {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err != nil {
		return err
	}

	if !sessionsYes {
		ok, err := styles.RunConfirm(app.Theme, "Delete all ended sessions from the journal?")
		if err != nil {
			return fmt.Errorf("confirm clear: %w", err)
		}
		if !ok {
			return nil
		}
	}

	n, err := uc.Purge(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderPurged(n))

	// Archived logs belong to ended sessions; the running one writes kiosk.log.
	if dir := app.Config.Logging.Dir; dir != "" {
		removed, err := logging.RemoveSessionArchives(dir)
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
		fmt.Println(renderer.RenderLogsRemoved(removed))
	}
	return nil
}
