package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/termfolio/internal/catalog"
	"github.com/Zachkp/termfolio/internal/theme"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	opts.Logger = zerolog.Nop()
	r, err := New(cat, opts)
	require.NoError(t, err)
	return r
}

func get(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postTheme(r http.Handler, id, returnTo string) *httptest.ResponseRecorder {
	form := url.Values{"theme": {id}, "return": {returnTo}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPagesRender(t *testing.T) {
	r := newRouter(t, Options{})

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "whoami"},
		{path: "/about", want: "Tech Innovations Inc."},
		{path: "/uses", want: "Keychron K8 Mechanical"},
		{path: "/projects", want: "Showing 6 of 6 projects"},
		{path: "/projects/yamds", want: "YAMDS"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(r, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, "--background-primary: #0a0a0a;")
			assert.Contains(t, body, `data-theme="terminal-green"`)
		})
	}
}

func TestHomeListsFeaturedProjects(t *testing.T) {
	r := newRouter(t, Options{})

	body := get(r, "/").Body.String()
	assert.Contains(t, body, "Zaphnath Bible Reader")
	assert.Contains(t, body, "YAMDS")
	assert.NotContains(t, body, "CBE Expense Tracker")
}

func TestProjectsFiltering(t *testing.T) {
	r := newRouter(t, Options{})

	tests := []struct {
		name    string
		query   string
		want    []string
		missing []string
	}{
		{
			name:    "search is case insensitive",
			query:   "q=yam",
			want:    []string{"Showing 1 of 6 projects", "YAMDS"},
			missing: []string{"CBE Expense Tracker"},
		},
		{
			name:  "no match",
			query: "q=zzz",
			want:  []string{"Showing 0 of 6 projects", "No projects found matching your criteria."},
		},
		{
			name:    "tags are combined",
			query:   "tag=React&tag=Vite",
			want:    []string{"Showing 2 of 6 projects", "YAMDS", "CBE Expense Tracker"},
			missing: []string{"Zaphnath Bible Reader"},
		},
		{
			name:    "featured only",
			query:   "featured=1&tag=React",
			want:    []string{"Showing 2 of 6 projects", "Zaphnath Bible Reader", "YAMDS"},
			missing: []string{"CBE Expense Tracker"},
		},
		{
			name:  "unknown tag",
			query: "tag=COBOL",
			want:  []string{"Showing 0 of 6 projects", "#COBOL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, "/projects?"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, s := range tt.want {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestUnknownProjectIsNotFound(t *testing.T) {
	r := newRouter(t, Options{})

	rec := get(r, "/projects/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No such file or directory")

	rec = get(r, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "/nowhere")

	rec = get(r, "/api/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

type apiProjectsResponse struct {
	Total    int `json:"total"`
	Count    int `json:"count"`
	Projects []struct {
		Slug string `json:"slug"`
	} `json:"projects"`
	Filters filtersJSON `json:"filters"`
}

func TestAPIProjects(t *testing.T) {
	r := newRouter(t, Options{})

	rec := get(r, "/api/projects?featured=true&tag=React")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apiProjectsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "zaphnath", resp.Projects[0].Slug)
	assert.Equal(t, "yamds", resp.Projects[1].Slug)
	assert.Equal(t, []string{"React"}, resp.Filters.Tags)
	assert.True(t, resp.Filters.Featured)
}

func TestAPIProjectsEmptyResultIsArray(t *testing.T) {
	r := newRouter(t, Options{})

	rec := get(r, "/api/projects?q=zzz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projects":[]`)
}

func TestAPIThemes(t *testing.T) {
	r := newRouter(t, Options{})

	rec := get(r, "/api/themes", &http.Cookie{Name: theme.StorageKey, Value: "monokai"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Current string `json:"current"`
		Themes  []struct {
			Value string `json:"value"`
			Name  string `json:"name"`
		} `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "monokai", resp.Current)
	require.Len(t, resp.Themes, 5)
	assert.Equal(t, "github-dark", resp.Themes[0].Value)
}

func themeCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == theme.StorageKey {
			return c
		}
	}
	return nil
}

func TestSetThemeWritesCookie(t *testing.T) {
	r := newRouter(t, Options{})

	rec := postTheme(r, "dracula", "/projects?tag=Go")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/projects?tag=Go", rec.Header().Get("Location"))

	c := themeCookie(rec)
	require.NotNil(t, c)
	assert.Equal(t, "dracula", c.Value)
	assert.True(t, c.HttpOnly)

	page := get(r, "/about", c)
	require.Equal(t, http.StatusOK, page.Code)
	body := page.Body.String()
	assert.Contains(t, body, "--accent-primary: #50fa7b;")
	assert.Contains(t, body, `data-theme="dracula"`)
	assert.Contains(t, body, `<option value="dracula" selected>`)
}

func TestSetThemeIgnoresUnknownTheme(t *testing.T) {
	r := newRouter(t, Options{})

	rec := postTheme(r, "solarized", "https://example.com/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Nil(t, themeCookie(rec))
}

func TestSetThemeFallsBackToReferer(t *testing.T) {
	r := newRouter(t, Options{})

	send := func(referer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader("theme=monokai"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if referer != "" {
			req.Header.Set("Referer", referer)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, "/about", send("http://example.com/about").Header().Get("Location"))
	assert.Equal(t, "/", send("http://elsewhere.example/about").Header().Get("Location"))
	assert.Equal(t, "/", send("").Header().Get("Location"))
}

func TestGarbageCookieFallsBackToDefault(t *testing.T) {
	r := newRouter(t, Options{})

	body := get(r, "/", &http.Cookie{Name: theme.StorageKey, Value: "neon"}).Body.String()
	assert.Contains(t, body, `data-theme="terminal-green"`)
	assert.Contains(t, body, "--accent-primary: #00ff88;")
}

func TestSharedStore(t *testing.T) {
	store := theme.NewStore(theme.NewMemoryStorage())
	r := newRouter(t, Options{SharedStore: store})

	rec := postTheme(r, "monokai", "/uses")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Nil(t, themeCookie(rec))
	assert.Equal(t, theme.Monokai, store.Current())

	body := get(r, "/uses").Body.String()
	assert.Contains(t, body, "--accent-primary: #a6e22e;")
	assert.Contains(t, body, `data-theme="monokai"`)
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "/"},
		{raw: "/about", want: "/about"},
		{raw: "/projects?tag=Go&featured=1", want: "/projects?tag=Go&featured=1"},
		{raw: "about", want: "/"},
		{raw: "//evil.example", want: "/"},
		{raw: `/\evil.example`, want: "/"},
		{raw: "https://evil.example/", want: "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, localPath(tt.raw), "input %q", tt.raw)
	}
}

func TestProjectsURL(t *testing.T) {
	order := []string{"React", "Vite", "Go"}

	assert.Equal(t, "/projects", projectsURL(catalog.FilterState{}, order))

	state := catalog.FilterState{
		SearchTerm:   "api",
		SelectedTags: catalog.NewTagSet("Vite", "React"),
		FeaturedOnly: true,
	}
	assert.Equal(t, "/projects?featured=1&q=api&tag=React&tag=Vite", projectsURL(state, order))
}

func TestTagOrder(t *testing.T) {
	got := tagOrder([]string{"Go", "React"}, catalog.NewTagSet("React", "Zig", "COBOL"))
	assert.Equal(t, []string{"Go", "React", "COBOL", "Zig"}, got)
}
