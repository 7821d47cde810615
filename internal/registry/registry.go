package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Category represents a group of related tools
type Category struct {
	Name        string
	Description string
	Keywords    []string
	Tools       []string
}

// Summary is the short form of a tool.
type Summary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Registry indexes tool names in registration order. It is filled once at
// startup and only read afterwards.
type Registry struct {
	order      []string
	summaries  map[string]Summary
	categories []Category
}

// NewRegistry creates a registry with the given categories. Category Tools
// lists are rebuilt from Add calls.
func NewRegistry(categories []Category) *Registry {
	cats := make([]Category, len(categories))
	for i, c := range categories {
		c.Tools = nil
		cats[i] = c
	}
	return &Registry{
		summaries:  make(map[string]Summary),
		categories: cats,
	}
}

// Add registers a tool. Names must be unique and the category must exist.
func (r *Registry) Add(name, description, category string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("registry: empty tool name")
	}
	if _, dup := r.summaries[name]; dup {
		return fmt.Errorf("registry: duplicate tool %q", name)
	}
	idx := -1
	for i := range r.categories {
		if r.categories[i].Name == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("registry: tool %q has unknown category %q", name, category)
	}
	r.categories[idx].Tools = append(r.categories[idx].Tools, name)
	r.order = append(r.order, name)
	r.summaries[name] = Summary{
		Name:        name,
		Description: truncateDescription(description, 100),
		Category:    category,
	}
	return nil
}

// Lookup returns the summary of a registered tool. Matching is exact.
func (r *Registry) Lookup(name string) (Summary, bool) {
	s, ok := r.summaries[name]
	return s, ok
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListCategories returns all categories with their tools.
func (r *Registry) ListCategories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// ToolCount returns total number of registered tools
func (r *Registry) ToolCount() int {
	return len(r.order)
}

// Suggest returns up to limit registered names close to an unknown name,
// closest first. It never returns name itself.
func (r *Registry) Suggest(name string, limit int) []string {
	if limit <= 0 {
		limit = 3
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	type cand struct {
		name string
		dist int
		pos  int
	}
	var cands []cand
	seen := map[string]bool{}

	// Names that contain the query's characters in order (typos by omission).
	for _, rk := range fuzzy.RankFindNormalizedFold(name, r.order) {
		seen[rk.Target] = true
		cands = append(cands, cand{rk.Target, rk.Distance, rk.OriginalIndex})
	}

	// Transpositions and substitutions, bounded by edit distance.
	maxDist := len(name)/3 + 1
	for pos, n := range r.order {
		if seen[n] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(strings.ToLower(name), n); d <= maxDist {
			cands = append(cands, cand{n, d, pos})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].pos < cands[j].pos
	})

	var out []string
	for _, c := range cands {
		if c.name == name {
			continue
		}
		out = append(out, c.name)
		if len(out) == limit {
			break
		}
	}
	return out
}

func truncateDescription(desc string, maxLen int) string {
	if len(desc) <= maxLen {
		return desc
	}
	return desc[:maxLen-3] + "..."
}
