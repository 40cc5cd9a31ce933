package config

import (
	"log"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/layout"
	"gopkg.in/yaml.v3"
)

// section holds the raw values of one top-level mapping.
type section struct {
	name   string
	values map[string]*yaml.Node
}

func warnf(format string, args ...interface{}) {
	log.Printf("[WARN] config: "+format, args...)
}

// topLevel splits the document into its top-level sections. A document
// that is not a mapping yields no sections.
func topLevel(root *yaml.Node) map[string]*section {
	sections := map[string]*section{}
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind == 0 || doc.Tag == "!!null" {
		return sections
	}
	if doc.Kind != yaml.MappingNode {
		warnf("top level is not a mapping; using defaults")
		return sections
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name, value := doc.Content[i].Value, doc.Content[i+1]
		s := &section{name: name, values: map[string]*yaml.Node{}}
		sections[name] = s
		if value.Kind != yaml.MappingNode {
			if value.Tag != "!!null" {
				warnf("section %q is not a mapping; using defaults", name)
			}
			continue
		}
		for j := 0; j+1 < len(value.Content); j += 2 {
			s.values[value.Content[j].Value] = value.Content[j+1]
		}
	}
	return sections
}

// decodeKey decodes key into dst when present and accepted by valid.
// Otherwise dst keeps its current value.
func decodeKey[T any](s *section, key string, dst *T, valid func(T) bool) {
	if s == nil {
		return
	}
	node, ok := s.values[key]
	if !ok {
		return
	}
	delete(s.values, key)

	var v T
	if err := node.Decode(&v); err != nil {
		warnf("%s.%s: cannot use %q; keeping %v", s.name, key, node.Value, *dst)
		return
	}
	if valid != nil && !valid(v) {
		warnf("%s.%s: %v out of range; keeping %v", s.name, key, v, *dst)
		return
	}
	*dst = v
}

// warnUnknown reports keys no decodeKey call consumed.
func warnUnknown(s *section) {
	if s == nil {
		return
	}
	for key := range s.values {
		warnf("unknown key %s.%s ignored", s.name, key)
	}
}

func nonEmpty(s string) bool { return s != "" }
func nonNegative(v float64) bool { return v >= 0 }
func positive(v float64) bool { return v > 0 }
func atLeastOne(v int) bool { return v >= 1 }

// validRotation accepts the two supported orientations.
func validRotation(v int) bool { return v == 0 || v == 180 }

func validAlign(v int) bool { return layout.Align(v).Valid() }

func (c *Config) applyColumns(s *section) {
	decodeKey(s, "first_name", &c.Columns.FirstName, nonEmpty)
	decodeKey(s, "full_name", &c.Columns.FullName, nonEmpty)
	decodeKey(s, "company", &c.Columns.Company, nonEmpty)
	decodeKey(s, "lastname", &c.Columns.LastName, nonEmpty)
	warnUnknown(s)
}

func (c *Config) applyLayout(s *section) {
	l := &c.Layout
	decodeKey(s, "margin_x", &l.MarginX, nonNegative)
	decodeKey(s, "top_offset", &l.TopOffset, nonNegative)
	decodeKey(s, "box_height", &l.BoxHeight, positive)
	decodeKey(s, "rows", &l.Rows, atLeastOne)
	decodeKey(s, "cols", &l.Cols, atLeastOne)
	decodeKey(s, "rotation_top", &l.RotationTop, validRotation)
	decodeKey(s, "rotation_bottom", &l.RotationBottom, validRotation)

	align := int(l.Align)
	decodeKey(s, "align", &align, validAlign)
	l.Align = layout.Align(align)
	warnUnknown(s)
}

func (c *Config) applyFont(s *section) {
	f := &c.Font
	decodeKey(s, "path", &f.Path, nonEmpty)
	decodeKey(s, "alias", &f.Alias, nonEmpty)
	decodeKey(s, "big", &f.Big, positive)
	decodeKey(s, "small", &f.Small, positive)
	decodeKey(s, "min_big", &f.MinBig, positive)
	decodeKey(s, "min_small", &f.MinSmall, positive)
	decodeKey(s, "step", &f.Step, positive)
	warnUnknown(s)

	if f.MinBig > f.Big {
		warnf("font.min_big %v above font.big %v; using %v", f.MinBig, f.Big, f.Big)
		f.MinBig = f.Big
	}
	if f.MinSmall > f.Small {
		warnf("font.min_small %v above font.small %v; using %v", f.MinSmall, f.Small, f.Small)
		f.MinSmall = f.Small
	}
}
