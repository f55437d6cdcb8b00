package catalog

import (
	"sort"
	"strings"
)

// TagSet is an unordered set of tags. The nil set is empty.
type TagSet map[string]struct{}

// NewTagSet builds a set from tags, dropping duplicates and empty strings.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s TagSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func (s TagSet) clone() TagSet {
	out := make(TagSet, len(s)+1)
	for tag := range s {
		out[tag] = struct{}{}
	}
	return out
}

// FilterState holds the active predicates of a catalog view. The zero value
// matches every project.
type FilterState struct {
	SearchTerm   string
	SelectedTags TagSet
	FeaturedOnly bool
}

// IsZero reports whether no predicate is active.
func (s FilterState) IsZero() bool {
	return s.SearchTerm == "" && s.SelectedTags.Len() == 0 && !s.FeaturedOnly
}

// ApplyFilters returns the projects matching every active predicate, in
// their input order. The input slice is not modified.
func ApplyFilters(projects []Project, state FilterState) []Project {
	term := strings.ToLower(state.SearchTerm)

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if !matchesSearch(p, term) {
			continue
		}
		if !matchesTags(p, state.SelectedTags) {
			continue
		}
		if state.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p Project, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// matchesTags requires every selected tag to be present on the project.
func matchesTags(p Project, selected TagSet) bool {
	for tag := range selected {
		if !p.HasTag(tag) {
			return false
		}
	}
	return true
}

// ToggleTag returns a copy of state with tag added when absent, removed when
// present. state itself is left untouched. The empty tag is ignored.
func ToggleTag(state FilterState, tag string) FilterState {
	next := state
	if tag == "" {
		next.SelectedTags = state.SelectedTags.clone()
		return next
	}
	next.SelectedTags = state.SelectedTags.clone()
	if next.SelectedTags.Has(tag) {
		delete(next.SelectedTags, tag)
	} else {
		next.SelectedTags[tag] = struct{}{}
	}
	return next
}
