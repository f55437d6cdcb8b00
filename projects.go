package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Zachkp/termfolio/internal/catalog"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	featuredStyle = cellStyle.Foreground(lipgloss.Color("#00ff88"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

func newProjectsCmd() *cobra.Command {
	var (
		search      string
		tags        []string
		featured    bool
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List catalog projects, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			size, err := catalogSize(catalogPath)
			if err != nil {
				return err
			}

			state := catalog.FilterState{
				SearchTerm:   search,
				SelectedTags: catalog.NewTagSet(tags...),
				FeaturedOnly: featured,
			}
			visible := catalog.ApplyFilters(cat.All(), state)
			return writeProjects(cmd.OutOrStdout(), visible, cat.Len(), size)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive text matched against title and description")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "only projects carrying this tag (repeatable)")
	cmd.Flags().BoolVarP(&featured, "featured", "f", false, "only featured projects")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML file (default is the built-in catalog)")
	return cmd
}

// catalogSize reports the catalog source size in kilobytes, rounded up.
func catalogSize(path string) (int, error) {
	n := int64(catalog.DefaultSize())
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return 0, fmt.Errorf("stat catalog %s: %w", path, err)
		}
		n = info.Size()
	}
	return int((n + 1023) / 1024), nil
}

func writeProjects(w io.Writer, projects []catalog.Project, total, sizeKB int) error {
	if len(projects) == 0 {
		_, err := fmt.Fprintf(w, "No projects found matching your criteria.\n%s\n",
			dimStyle.Render(fmt.Sprintf("Showing 0 of %d projects", total)))
		return err
	}

	featured := make(map[int]bool, len(projects))
	rows := make([][]string, 0, len(projects))
	for i, p := range projects {
		featured[i] = p.Featured
		size := p.Size
		if size == "" {
			size = "-"
		}
		rows = append(rows, []string{
			p.Slug,
			p.Title,
			catalog.FormatDate(p.Date),
			size,
			strings.Join(p.Tags, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLUG", "TITLE", "DATE", "SIZE", "TAGS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case featured[row]:
				return featuredStyle
			default:
				return cellStyle
			}
		})

	summary := fmt.Sprintf("Showing %d of %d projects (catalog %s)", len(projects), total, catalog.FormatSize(sizeKB))
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), dimStyle.Render(summary))
	return err
}
