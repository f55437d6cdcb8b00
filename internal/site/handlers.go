package site

import (
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/termfolio/internal/catalog"
	"github.com/Zachkp/termfolio/internal/theme"
)

func (s *server) home(c *gin.Context) {
	s.render(c, http.StatusOK, "home.html", gin.H{
		"title":    "Home",
		"nav":      "home",
		"intro":    Intro,
		"featured": s.catalog.Featured(),
		"total":    s.catalog.Len(),
	})
}

func (s *server) about(c *gin.Context) {
	s.render(c, http.StatusOK, "about.html", gin.H{
		"title":      "About",
		"nav":        "about",
		"about":      AboutMe,
		"skills":     Skills,
		"experience": Experience,
	})
}

func (s *server) uses(c *gin.Context) {
	s.render(c, http.StatusOK, "uses.html", gin.H{
		"title":    "Uses",
		"nav":      "uses",
		"hardware": Hardware,
		"software": Software,
	})
}

// projectQuery is the URL form of a catalog.FilterState.
type projectQuery struct {
	Search   string   `form:"q"`
	Tags     []string `form:"tag"`
	Featured string   `form:"featured"`
}

func (q projectQuery) state() catalog.FilterState {
	featured := false
	switch strings.ToLower(q.Featured) {
	case "1", "true", "on", "yes":
		featured = true
	}
	return catalog.FilterState{
		SearchTerm:   q.Search,
		SelectedTags: catalog.NewTagSet(q.Tags...),
		FeaturedOnly: featured,
	}
}

// filterState reads the filter predicates from the query string. Malformed
// input degrades to an empty predicate rather than an error.
func filterState(c *gin.Context) catalog.FilterState {
	var q projectQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return catalog.FilterState{}
	}
	return q.state()
}

// tagOrder is the display order for tag chips: the catalog's tags followed
// by any selected tags the catalog does not know about.
func tagOrder(known []string, selected catalog.TagSet) []string {
	order := make([]string, 0, len(known)+selected.Len())
	order = append(order, known...)

	seen := catalog.NewTagSet(known...)
	extra := make([]string, 0)
	for tag := range selected {
		if !seen.Has(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

// projectsURL encodes state as a /projects link, listing tags in order.
func projectsURL(state catalog.FilterState, order []string) string {
	v := url.Values{}
	if state.SearchTerm != "" {
		v.Set("q", state.SearchTerm)
	}
	for _, tag := range order {
		if state.SelectedTags.Has(tag) {
			v.Add("tag", tag)
		}
	}
	if state.FeaturedOnly {
		v.Set("featured", "1")
	}
	if len(v) == 0 {
		return "/projects"
	}
	return "/projects?" + v.Encode()
}

type tagChip struct {
	Name     string
	Selected bool
	URL      string
}

func (s *server) projects(c *gin.Context) {
	state := filterState(c)
	all := s.catalog.All()
	visible := catalog.ApplyFilters(all, state)

	order := tagOrder(s.catalog.Tags(), state.SelectedTags)
	chips := make([]tagChip, 0, len(order))
	for _, tag := range order {
		chips = append(chips, tagChip{
			Name:     tag,
			Selected: state.SelectedTags.Has(tag),
			URL:      projectsURL(catalog.ToggleTag(state, tag), order),
		})
	}

	featuredToggle := state
	featuredToggle.FeaturedOnly = !state.FeaturedOnly

	s.render(c, http.StatusOK, "projects.html", gin.H{
		"title":       "Projects",
		"nav":         "projects",
		"projects":    visible,
		"total":       len(all),
		"count":       len(visible),
		"search":      state.SearchTerm,
		"featured":    state.FeaturedOnly,
		"tags":        chips,
		"selected":    state.SelectedTags.Sorted(),
		"featuredURL": projectsURL(featuredToggle, order),
		"filtered":    !state.IsZero(),
	})
}

func (s *server) project(c *gin.Context) {
	p, err := s.catalog.BySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(c)
			return
		}
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	s.render(c, http.StatusOK, "project.html", gin.H{
		"title":   p.Title,
		"nav":     "projects",
		"project": p,
	})
}

// setTheme applies the submitted theme and sends the visitor back to the
// page the form was posted from.
func (s *server) setTheme(c *gin.Context) {
	id := theme.ID(strings.TrimSpace(c.PostForm("theme")))
	if !themeStore(c).SetTheme(id) {
		s.log.Debug().Str("theme", string(id)).Msg("ignored theme change")
	}
	c.Redirect(http.StatusSeeOther, returnPath(c))
}

// returnPath prefers the form's return field, then a same-host Referer.
func returnPath(c *gin.Context) string {
	if p := c.PostForm("return"); p != "" {
		return localPath(p)
	}
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Host == "" || ref.Host != c.Request.Host {
		return "/"
	}
	return localPath(ref.RequestURI())
}

// localPath only allows same-site absolute paths, falling back to "/".
func localPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return u.RequestURI()
}

type filtersJSON struct {
	Search   string   `json:"q"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

func (s *server) apiProjects(c *gin.Context) {
	state := filterState(c)
	visible := catalog.ApplyFilters(s.catalog.All(), state)

	c.JSON(http.StatusOK, gin.H{
		"total":    s.catalog.Len(),
		"count":    len(visible),
		"projects": visible,
		"filters": filtersJSON{
			Search:   state.SearchTerm,
			Tags:     state.SelectedTags.Sorted(),
			Featured: state.FeaturedOnly,
		},
	})
}

func (s *server) apiThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"current": themeStore(c).Current(),
		"themes":  theme.Palettes(),
	})
}
