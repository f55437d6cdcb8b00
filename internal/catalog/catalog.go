package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

var (
	// ErrNotFound is returned when no project has the requested slug.
	ErrNotFound = errors.New("project not found")
	// ErrDuplicateSlug is returned when two records share a slug.
	ErrDuplicateSlug = errors.New("duplicate project slug")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

//go:embed projects.yaml
var defaultData []byte

type document struct {
	Projects []record `yaml:"projects" validate:"dive"`
}

type record struct {
	Slug            string   `yaml:"slug" validate:"required,slug"`
	Title           string   `yaml:"title" validate:"required"`
	Description     string   `yaml:"description" validate:"required"`
	LongDescription string   `yaml:"longDescription"`
	Tags            []string `yaml:"tags" validate:"dive,required"`
	Date            string   `yaml:"date" validate:"required,datetime=2006-01-02"`
	Featured        bool     `yaml:"featured"`
	Status          string   `yaml:"status" validate:"required,oneof=Active Archived 'In Development' Maintenance"`
	Difficulty      string   `yaml:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Category        string   `yaml:"category"`
	Size            string   `yaml:"size"`
	GitHub          string   `yaml:"github" validate:"omitempty,url"`
	Demo            string   `yaml:"demo" validate:"omitempty,url"`
	Docs            string   `yaml:"docs" validate:"omitempty,url"`
	Package         string   `yaml:"package" validate:"omitempty,url"`
	Content         string   `yaml:"content"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Catalog is an immutable, newest-first list of projects with unique slugs.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// New builds a catalog from projects. Slugs must be unique. The projects are
// ordered by date, newest first; ties keep their input order.
func New(projects []Project) (*Catalog, error) {
	sorted := make([]Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	index := make(map[string]int, len(sorted))
	for i, p := range sorted {
		if _, exists := index[p.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		index[p.Slug] = i
	}

	return &Catalog{projects: sorted, index: index}, nil
}

// Load decodes and validates a YAML catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, convertValidationError(err)
	}

	projects := make([]Project, 0, len(doc.Projects))
	for _, rec := range doc.Projects {
		p, err := rec.project()
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return New(projects)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultData))
}

// DefaultSize is the size in bytes of the built-in catalog source.
func DefaultSize() int {
	return len(defaultData)
}

func (r record) project() (Project, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return Project{}, fmt.Errorf("project %q: parse date: %w", r.Slug, err)
	}

	tags := make([]string, 0, len(r.Tags))
	seen := make(map[string]struct{}, len(r.Tags))
	for _, tag := range r.Tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return Project{
		Slug:            r.Slug,
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Tags:            tags,
		Date:            date,
		Featured:        r.Featured,
		Status:          r.Status,
		Difficulty:      r.Difficulty,
		Category:        r.Category,
		Size:            r.Size,
		GitHub:          r.GitHub,
		Demo:            r.Demo,
		Docs:            r.Docs,
		Package:         r.Package,
		Content:         r.Content,
	}, nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate catalog: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("validate catalog: %s", strings.Join(msgs, "; "))
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// All returns every project, newest first. The slice is a copy.
func (c *Catalog) All() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// BySlug looks up a single project.
func (c *Catalog) BySlug(slug string) (Project, error) {
	i, ok := c.index[slug]
	if !ok {
		return Project{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return c.projects[i], nil
}

func (c *Catalog) Featured() []Project {
	return ApplyFilters(c.projects, FilterState{FeaturedOnly: true})
}

func (c *Catalog) ByTag(tag string) []Project {
	return ApplyFilters(c.projects, FilterState{SelectedTags: NewTagSet(tag)})
}

func (c *Catalog) ByCategory(category string) []Project {
	out := make([]Project, 0)
	for _, p := range c.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every tag used by the catalog, deduplicated and sorted.
func (c *Catalog) Tags() []string {
	set := make(TagSet)
	for _, p := range c.projects {
		for _, tag := range p.Tags {
			set[tag] = struct{}{}
		}
	}
	return set.Sorted()
}

// Categories returns the non-empty categories, deduplicated and sorted.
func (c *Catalog) Categories() []string {
	set := make(TagSet)
	for _, p := range c.projects {
		if p.Category != "" {
			set[p.Category] = struct{}{}
		}
	}
	return set.Sorted()
}
