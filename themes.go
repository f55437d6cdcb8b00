package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/termfolio/internal/config"
	"github.com/Zachkp/termfolio/internal/theme"
)

func newThemesCmd(cfgFile *string) *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes",
		Long: `themes prints every palette with a color swatch. With the sqlite theme
backend the stored site-wide theme is marked, and --set changes it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			var storage theme.Storage
			if cfg.ThemeBackend == config.ThemeBackendSQLite {
				db, err := theme.OpenSQLite(cfg.DatabasePath, zerolog.Nop())
				if err != nil {
					return err
				}
				defer db.Close()
				storage = db
			}
			store := theme.NewStore(storage)

			if set != "" {
				id, err := theme.Parse(set)
				if err != nil {
					return err
				}
				if storage == nil {
					return fmt.Errorf("--set needs the %s theme backend", config.ThemeBackendSQLite)
				}
				store.SetTheme(id)
			}
			return writeThemes(cmd.OutOrStdout(), store.Current())
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "store this theme as the site-wide preference")
	return cmd
}

func swatch(c theme.Colors) string {
	colors := []string{c.Background, c.BackgroundSecondary, c.TextPrimary, c.TextTertiary, c.Accent, c.AccentSecondary}
	var b strings.Builder
	for _, hex := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	return b.String()
}

func writeThemes(w io.Writer, current theme.ID) error {
	for _, p := range theme.Palettes() {
		marker := " "
		if p.ID == current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-15s %-15s %s\n", marker, p.ID, p.Name, swatch(p.Colors)); err != nil {
			return err
		}
	}
	return nil
}
