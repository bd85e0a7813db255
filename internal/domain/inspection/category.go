package inspection

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultTableYAML []byte

type tableFile struct {
	Default    string `yaml:"default"`
	Categories []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
}

type rule struct {
	category Category
	keywords []string
}

// Table maps service names to categories by keyword.
type Table struct {
	rules    []rule
	fallback Category
}

// LoadTable parses a keyword table document.
func LoadTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse category table: %w", err)
	}

	fallback, err := ParseCategory(f.Default)
	if err != nil {
		return nil, fmt.Errorf("category table default %q: %w", f.Default, err)
	}
	if len(f.Categories) == 0 {
		return nil, errors.New("category table has no categories")
	}

	t := &Table{fallback: fallback}
	for _, c := range f.Categories {
		cat, err := ParseCategory(c.Name)
		if err != nil {
			return nil, fmt.Errorf("category table entry %q: %w", c.Name, err)
		}
		r := rule{category: cat}
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				r.keywords = append(r.keywords, kw)
			}
		}
		t.rules = append(t.rules, r)
	}
	return t, nil
}

// DefaultTable returns the embedded keyword table.
func DefaultTable() *Table {
	t, err := LoadTable(defaultTableYAML)
	if err != nil {
		panic("inspection: embedded category table is invalid: " + err.Error())
	}
	return t
}

// Categorize returns the first category whose keyword occurs in name. Names
// that match nothing fall back to the table default.
func (t *Table) Categorize(name string) Category {
	c, _ := t.match(name)
	return c
}

// Matched reports whether name hits any keyword, i.e. whether Categorize
// used a rule rather than the fallback.
func (t *Table) Matched(name string) bool {
	_, ok := t.match(name)
	return ok
}

func (t *Table) match(name string) (Category, bool) {
	lower := strings.ToLower(name)
	for _, r := range t.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category, true
			}
		}
	}
	return t.fallback, false
}

// Grouped holds services partitioned by category, preserving input order.
type Grouped struct {
	Required     []Service
	Recommended  []Service
	Preventative []Service
}

func (t *Table) Group(services []Service) Grouped {
	var g Grouped
	for _, s := range services {
		switch t.Categorize(s.Name) {
		case CategoryRequired:
			g.Required = append(g.Required, s)
		case CategoryPreventative:
			g.Preventative = append(g.Preventative, s)
		default:
			g.Recommended = append(g.Recommended, s)
		}
	}
	return g
}
