package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Project is a single showcase entry. Only Title, Description, Tags and
// Featured take part in filtering; the rest is display metadata.
type Project struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	Tags            []string  `json:"tags"`
	Date            time.Time `json:"date"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"`
	Difficulty      string    `json:"difficulty,omitempty"`
	Category        string    `json:"category,omitempty"`
	Size            string    `json:"size,omitempty"`
	GitHub          string    `json:"github,omitempty"`
	Demo            string    `json:"demo,omitempty"`
	Docs            string    `json:"docs,omitempty"`
	Package         string    `json:"package,omitempty"`
	Content         string    `json:"-"`
}

// LinkKind names the kind of external link a project can carry.
type LinkKind string

const (
	LinkGitHub  LinkKind = "github"
	LinkDemo    LinkKind = "demo"
	LinkDocs    LinkKind = "docs"
	LinkPackage LinkKind = "package"
)

var linkLabels = map[LinkKind]string{
	LinkGitHub:  "View Source",
	LinkDemo:    "Live Demo",
	LinkDocs:    "Documentation",
	LinkPackage: "Package",
}

// Link is a rendered external link for a project.
type Link struct {
	Kind  LinkKind `json:"type"`
	URL   string   `json:"url"`
	Label string   `json:"label"`
}

// Links returns the project's non-empty links in display order.
func (p Project) Links() []Link {
	candidates := []struct {
		kind LinkKind
		url  string
	}{
		{LinkGitHub, p.GitHub},
		{LinkDemo, p.Demo},
		{LinkDocs, p.Docs},
		{LinkPackage, p.Package},
	}

	links := make([]Link, 0, len(candidates))
	for _, c := range candidates {
		if c.url == "" {
			continue
		}
		links = append(links, Link{Kind: c.kind, URL: c.url, Label: linkLabels[c.kind]})
	}
	return links
}

// Summary prefers the long description when one is set.
func (p Project) Summary() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// Readme returns the body shown on the detail page. Projects without
// explicit content get a generic README-style body.
func (p Project) Readme() string {
	if strings.TrimSpace(p.Content) != "" {
		return p.Content
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n%s\n\n", p.Title, p.Summary())
	b.WriteString("## Features\n\n")
	b.WriteString("This project includes comprehensive features and documentation.\n\n")
	b.WriteString("## Installation\n\n")
	b.WriteString("Follow the installation instructions in the repository README.\n\n")
	b.WriteString("## Usage\n\n")
	b.WriteString("Check the documentation for detailed usage examples and API reference.\n\n")
	b.WriteString("## Contributing\n\n")
	b.WriteString("Contributions are welcome! Please see the contributing guidelines in the repository.")
	return b.String()
}

// HasTag reports whether tag is one of the project's tags. Matching is exact.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FormatSize renders a size given in kilobytes the way a directory listing
// would: 512K, 1.5M.
func FormatSize(kb int) string {
	if kb < 1024 {
		return fmt.Sprintf("%dK", kb)
	}
	return fmt.Sprintf("%.1fM", float64(kb)/1024)
}

// FormatDate renders a project date for listings, e.g. "Sep 8, 2025".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
