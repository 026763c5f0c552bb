package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samdwyer/verbonia/internal/config"
	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/world"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Inspect text maps",
}

var mapCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a text map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := world.FromFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %s\n", args[0], m.Width(), m.Height(), tileCounts(m))
		return nil
	},
}

var mapPreviewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Print a text map in colour",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		m, err := world.FromFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		width := m.Width()
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < width {
			width = w
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPreview(m, cfg.Palette, width))
		return nil
	},
}

func init() {
	mapCmd.AddCommand(mapCheckCmd)
	mapCmd.AddCommand(mapPreviewCmd)
}

// renderPreview draws the first width columns of m with each tile on its palette colour.
func renderPreview(m *world.Map, palette map[string]string, width int) string {
	styles := make(map[world.Tile]lipgloss.Style, len(world.Tiles))
	for _, t := range world.Tiles {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0"))
		if hex, ok := palette[t.String()]; ok {
			style = style.Background(lipgloss.Color(hex))
		}
		styles[t] = style
	}

	rows := m.Region(geom.NewRect(0, 0, min(width, m.Width()), m.Height()))
	lines := make([]string, len(rows))
	for y, row := range rows {
		var sb strings.Builder
		for _, t := range row {
			sb.WriteString(styles[t].Render(string(t.Rune())))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func tileCounts(m *world.Map) string {
	counts := make(map[world.Tile]int)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			counts[m.At(geom.Pt(x, y))]++
		}
	}

	parts := make([]string, 0, len(world.Tiles))
	for _, t := range world.Tiles {
		parts = append(parts, fmt.Sprintf("%s=%d", t, counts[t]))
	}
	return strings.Join(parts, " ")
}
