package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/termfolio/internal/catalog"
)

// run executes the CLI from an empty working directory so no stray config
// file is picked up.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestProjectsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		missing []string
	}{
		{
			name: "everything",
			args: []string{"projects"},
			want: []string{"zaphnath", "cbe-expense", "Showing 6 of 6 projects"},
		},
		{
			name:    "search",
			args:    []string{"projects", "--search", "yam"},
			want:    []string{"yamds", "Showing 1 of 6 projects"},
			missing: []string{"cbe-expense"},
		},
		{
			name:    "tags",
			args:    []string{"projects", "--tag", "React", "--tag", "Vite"},
			want:    []string{"yamds", "cbe-expense", "Showing 2 of 6 projects"},
			missing: []string{"zaphnath"},
		},
		{
			name:    "featured",
			args:    []string{"projects", "--featured"},
			want:    []string{"zaphnath", "ethioqen", "yamds", "Showing 3 of 6 projects"},
			missing: []string{"pft-api"},
		},
		{
			name: "no match",
			args: []string{"projects", "-s", "zzz"},
			want: []string{"No projects found matching your criteria.", "Showing 0 of 6 projects"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestProjectsCommandReadsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	doc := `
projects:
  - slug: only-one
    title: Only One
    description: the single entry
    tags: [Go]
    date: "2025-05-01"
    status: Active
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, "projects", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "only-one")
	assert.Contains(t, out, "Showing 1 of 1 projects (catalog 1K)")

	_, err = run(t, "projects", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalogSize(t *testing.T) {
	kb, err := catalogSize("")
	require.NoError(t, err)
	assert.Equal(t, (catalog.DefaultSize()+1023)/1024, kb)
}

func TestThemesCommand(t *testing.T) {
	out, err := run(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "* terminal-green")
	assert.Contains(t, out, "  dracula")
	assert.Contains(t, out, "Terminal Amber")

	_, err = run(t, "themes", "--set", "dracula")
	assert.Error(t, err, "cookie backend has nothing to store into")

	_, err = run(t, "themes", "--set", "solarized")
	assert.Error(t, err)
}

func TestThemesCommandWithSQLite(t *testing.T) {
	t.Setenv("TERMFOLIO_THEME_BACKEND", "sqlite")
	t.Setenv("TERMFOLIO_DATABASE_PATH", filepath.Join(t.TempDir(), "prefs.db"))

	out, err := run(t, "themes", "--set", "Dracula")
	require.NoError(t, err)
	assert.Contains(t, out, "* dracula")

	out, err = run(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "* dracula")
	assert.Contains(t, out, "  terminal-green")
}

func TestServeRejectsBadConfig(t *testing.T) {
	t.Setenv("TERMFOLIO_PORT", "0")

	_, err := run(t, "serve")
	assert.Error(t, err)
}
