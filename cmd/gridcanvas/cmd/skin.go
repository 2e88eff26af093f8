package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/gridcanvas/internal/config"
	"github.com/OpenTraceLab/gridcanvas/pkg/board"
	"github.com/OpenTraceLab/gridcanvas/pkg/skin"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var skinCmd = &cobra.Command{
	Use:   "skin",
	Short: "Skin manifest tools",
}

var skinCheckCmd = &cobra.Command{
	Use:   "check [manifest]",
	Short: "List the variants of a skin and report missing tags",
	Long: `Load a skin manifest (or the builtin skin when no path is given) and
list how many variants each tag has. Fails when a tag the snake can
produce has no variant.

Examples:
  gridcanvas skin check
  gridcanvas skin check assets/meadow.skin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSkinCheck,
}

func init() {
	skinCmd.AddCommand(skinCheckCmd)
	rootCmd.AddCommand(skinCmd)
}

// loadSkin prefers path, then the configured manifest, then the builtin
// skin.
func loadSkin(cfg *config.Config, path string) (*skin.Skin, error) {
	if path == "" {
		path = cfg.Skin
	}
	if path == "" {
		return skin.Builtin(cfg.CellPixels)
	}
	s, err := skin.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading skin %s: %w", path, err)
	}
	return s, nil
}

func runSkinCheck(cmd *cobra.Command, args []string) error {
	cfg := configFromContext(cmd.Context())
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	s, err := loadSkin(cfg, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Skin %q: %d images", s.Name, s.Store.Len())))
	for _, k := range board.LiveKeys() {
		vs := s.Store.Lookup(k)
		if len(vs) == 0 {
			fmt.Fprintf(out, "  %-15s %s\n", k, missingStyle.Render("missing"))
			continue
		}
		names := make([]string, len(vs))
		for i, v := range vs {
			names[i] = v.Name()
		}
		fmt.Fprintf(out, "  %-15s %d %v\n", k, len(vs), names)
	}
	return skin.Check(s.Store, board.LiveKeys())
}
