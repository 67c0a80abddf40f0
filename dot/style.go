// Package dot provides the style table mapping categories to DOT
// attributes.
package dot

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for styles and encoding.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Encode.
	ErrGraphNil = errors.New("dot: graph is nil")

	// ErrUnencodable is returned when a label, title, or attribute cannot
	// be escaped into the DOT language.
	ErrUnencodable = errors.New("dot: text cannot be encoded")

	// ErrBadStyle is returned when a YAML style table cannot be parsed.
	ErrBadStyle = errors.New("dot: invalid style table")
)

// Attr is a single DOT attribute. Attribute order within a category is
// preserved verbatim in the output.
type Attr struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Style configures graph-wide appearance and the category → attribute
// table used by Encode.
type Style struct {
	// FontName is applied to graph, node, and edge defaults.
	FontName string `yaml:"fontname"`

	// RankDir sets the layout direction: "" or "TB" (top to bottom, the
	// engine default) or "LR" (left to right, used by the legend).
	RankDir string `yaml:"rankdir"`

	// Title is displayed in small text at the bottom of the graph.
	Title string `yaml:"title"`

	// Categories maps category names to ordered attribute lists.
	Categories map[string][]Attr `yaml:"categories"`
}

// DefaultStyle returns the standard rig styling: filled deforming bones,
// coral symmetry-breaking bones, circled roots, dimmed constraint edges,
// and invisible legend-layout edges.
func DefaultStyle() *Style {
	return &Style{
		FontName: "Helvetica",
		Categories: map[string][]Attr{
			"deforming": {
				{Key: "fillcolor", Value: "gray90"},
				{Key: "style", Value: "rounded, filled"},
			},
			"antisymmetric": {
				{Key: "fillcolor", Value: "lightcoral"},
				{Key: "style", Value: "rounded, filled"},
			},
			"root": {
				{Key: "shape", Value: "circle"},
			},
			"constraint": {
				{Key: "color", Value: "gray50"},
				{Key: "fontcolor", Value: "gray50"},
				{Key: "arrowsize", Value: "0.5"},
			},
			"invisible": {
				{Key: "style", Value: "invisible"},
				{Key: "arrowhead", Value: "none"},
			},
		},
	}
}

// StyleFromYAML parses a style table, letting the host supply its own
// fonts and category attributes. Example document:
//
//	fontname: Gill Sans
//	rankdir: LR
//	categories:
//	  deforming:
//	    - key: fillcolor
//	      value: gray90
//	    - key: style
//	      value: rounded, filled
//
// Returns ErrBadStyle when the document does not parse.
func StyleFromYAML(data []byte) (*Style, error) {
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStyle, err)
	}
	if s.Categories == nil {
		s.Categories = make(map[string][]Attr)
	}

	return &s, nil
}
