// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed stats.yaml
var embeddedRegistry []byte

var (
	ErrNoStats        = errors.New("registry has no stats")
	ErrDuplicateID    = errors.New("duplicate stat id")
	ErrDuplicateOrder = errors.New("duplicate stat order")
	ErrMissingDefault = errors.New("default stat not found")
)

// ShareStat is one pre-authored statistic with its own share variant
type ShareStat struct {
	ID            string `yaml:"id" json:"id"`
	Order         int    `yaml:"order" json:"order"`
	Label         string `yaml:"label" json:"label"`
	Number        string `yaml:"number" json:"number"`
	Description   string `yaml:"description" json:"description"`
	ShareText     string `yaml:"share_text" json:"share_text"`
	OGImage       string `yaml:"og_image" json:"og_image"`
	OGTitle       string `yaml:"og_title" json:"og_title"`
	OGDescription string `yaml:"og_description" json:"og_description"`
	Color         string `yaml:"color" json:"color"`
}

type registryFile struct {
	SiteName string      `yaml:"site_name"`
	Default  string      `yaml:"default"`
	Stats    []ShareStat `yaml:"stats"`
}

// Registry is an immutable set of stats keyed by id
type Registry struct {
	siteName string
	byID     map[string]ShareStat
	ordered  []ShareStat
	def      ShareStat
}

// Load parses and validates a registry document
func Load(data []byte) (*Registry, error) {
	var f registryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse stat registry: %w", err)
	}

	if len(f.Stats) == 0 {
		return nil, ErrNoStats
	}

	r := &Registry{
		siteName: f.SiteName,
		byID:     make(map[string]ShareStat, len(f.Stats)),
		ordered:  make([]ShareStat, 0, len(f.Stats)),
	}

	orders := make(map[int]string, len(f.Stats))
	for i, s := range f.Stats {
		if s.ID == "" {
			return nil, fmt.Errorf("stat %d has no id", i)
		}
		if _, ok := r.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		if other, ok := orders[s.Order]; ok {
			return nil, fmt.Errorf("%w: %d (%s, %s)", ErrDuplicateOrder, s.Order, other, s.ID)
		}
		orders[s.Order] = s.ID
		r.byID[s.ID] = s
		r.ordered = append(r.ordered, s)
	}

	sort.SliceStable(r.ordered, func(i, j int) bool {
		return r.ordered[i].Order < r.ordered[j].Order
	})

	def, ok := r.byID[f.Default]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefault, f.Default)
	}
	r.def = def

	return r, nil
}

// Embedded returns the registry compiled into the binary
func Embedded() (*Registry, error) {
	return Load(embeddedRegistry)
}

// Resolve always returns a stat: unknown or empty ids get the default
func (r *Registry) Resolve(id string) ShareStat {
	if s, ok := r.byID[id]; ok {
		return s
	}
	return r.def
}

// Lookup reports whether id is a known stat
func (r *Registry) Lookup(id string) (ShareStat, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// ListAll returns every stat in order. The slice is a copy.
func (r *Registry) ListAll() []ShareStat {
	out := make([]ShareStat, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *Registry) DefaultStat() ShareStat {
	return r.def
}

func (r *Registry) SiteName() string {
	return r.siteName
}
