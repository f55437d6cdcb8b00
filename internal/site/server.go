package site

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Zachkp/termfolio/internal/catalog"
	"github.com/Zachkp/termfolio/internal/logger"
	"github.com/Zachkp/termfolio/internal/theme"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	storeKey = "themeStore"
	styleKey = "themeStyle"
)

// Options configures the HTTP surface.
type Options struct {
	// StaticDir is served under /static. Empty disables static serving.
	StaticDir string
	// SharedStore, when set, is used by every request instead of a
	// per-visitor cookie-backed store.
	SharedStore   *theme.Store
	SecureCookies bool
	Logger        zerolog.Logger
}

type server struct {
	catalog *catalog.Catalog
	opts    Options
	log     zerolog.Logger
}

// New builds the router for the portfolio.
func New(cat *catalog.Catalog, opts Options) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &server{catalog: cat, opts: opts, log: opts.Logger}

	r := gin.New()
	r.Use(logger.Middleware(s.log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	pages := r.Group("/")
	pages.Use(s.themeContext())
	pages.GET("/", s.home)
	pages.GET("/about", s.about)
	pages.GET("/uses", s.uses)
	pages.GET("/projects", s.projects)
	pages.GET("/projects/:slug", s.project)
	pages.POST("/theme", s.setTheme)

	api := r.Group("/api")
	api.Use(s.themeContext())
	api.GET("/projects", s.apiProjects)
	api.GET("/themes", s.apiThemes)

	r.NoRoute(s.themeContext(), s.notFound)

	return r, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": catalog.FormatDate,
		"lower":      strings.ToLower,
	}
}

// themeContext attaches the visitor's preference store and a style context
// subscribed to it. The subscription lives for the request.
func (s *server) themeContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := s.opts.SharedStore
		if store == nil {
			storage := theme.NewCookieStorage(c, theme.SecureCookies(s.opts.SecureCookies))
			store = theme.NewStore(storage, theme.WithLogger(s.log))
		}

		style := &theme.StyleContext{}
		unsubscribe := store.Subscribe(style.Apply)
		defer unsubscribe()

		c.Set(storeKey, store)
		c.Set(styleKey, style)
		c.Next()
	}
}

func themeStore(c *gin.Context) *theme.Store {
	return c.MustGet(storeKey).(*theme.Store)
}

func styleContext(c *gin.Context) *theme.StyleContext {
	return c.MustGet(styleKey).(*theme.StyleContext)
}

// render executes a page template with the data every layout needs.
func (s *server) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	style := styleContext(c)
	data["themeCSS"] = template.CSS(style.Declarations())
	data["currentTheme"] = style.Theme()
	data["themes"] = theme.Palettes()
	data["returnTo"] = c.Request.URL.RequestURI()
	c.HTML(code, name, data)
}

func (s *server) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	s.render(c, http.StatusNotFound, "not-found.html", gin.H{
		"title": "404",
		"path":  c.Request.URL.Path,
	})
}
