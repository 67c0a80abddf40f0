// Package dot provides the deterministic DOT serializer.
package dot

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode serializes g into a single DOT document using the given style
// (DefaultStyle when s is nil). Output is byte-stable for identical
// input: every entity is emitted in declaration order, keyed by its
// integer ID rather than its label.
//
// Returns ErrGraphNil for a nil graph and ErrUnencodable when a label,
// title, or attribute cannot be escaped.
//
// Complexity: O(N + E + total attribute text)
func Encode(g *Graph, s *Style) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	if s == nil {
		s = DefaultStyle()
	}

	font, err := escape(s.FontName)
	if err != nil {
		return "", err
	}
	rank, err := escape(s.RankDir)
	if err != nil {
		return "", err
	}
	title, err := escape(s.Title)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	// fontsize=10 on the graph styles the small bottom title; the engine
	// default is also 10 for edge labels.
	fmt.Fprintf(&b,
		`digraph { graph [rankdir="%s" style=rounded color=gray75 fontname="%s" fontsize=10]; `,
		rank, font)
	fmt.Fprintf(&b, `node [shape=plaintext style=rounded fontname="%s"]; `, font)
	fmt.Fprintf(&b, `edge [fontsize=10 fontname="%s"]; `, font)
	fmt.Fprintf(&b, `label="%s"; `, title)

	var stmts []string

	for _, id := range g.free {
		stmt, err := nodeStmt(g, s, id)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}

	for _, id := range g.clusters {
		stmt, err := clusterStmt(g, s, id)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}

	for _, e := range g.edges {
		stmt, err := edgeStmt(g, s, e)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
	}

	b.WriteString(strings.Join(stmts, " "))
	if len(stmts) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}")

	return b.String(), nil
}

// escape backslash-escapes quotation marks and backslashes. Control
// characters cannot be made safe and fail with ErrUnencodable.
func escape(text string) (string, error) {
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			return "", fmt.Errorf("%w: control character in %q", ErrUnencodable, text)
		}
	}
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)

	return text, nil
}

// attrList renders the bracketed attribute list of an entity: the label
// first, then the attributes of each category in category-list order.
// Returns "" when the entity has neither.
func attrList(g *Graph, s *Style, id int) (string, error) {
	var parts []string

	if label := g.labels[id]; label != "" {
		esc, err := escape(label)
		if err != nil {
			return "", err
		}
		parts = append(parts, `label="`+esc+`"`)
	}

	for _, cat := range g.categories[id] {
		for _, a := range s.Categories[cat] {
			key, err := escape(a.Key)
			if err != nil {
				return "", err
			}
			val, err := escape(a.Value)
			if err != nil {
				return "", err
			}
			parts = append(parts, `"`+key+`"="`+val+`"`)
		}
	}

	if len(parts) == 0 {
		return "", nil
	}

	return " [" + strings.Join(parts, ", ") + "]", nil
}

// nodeStmt renders one node statement, keyed by the node's integer ID.
func nodeStmt(g *Graph, s *Style, id int) (string, error) {
	attrs, err := attrList(g, s, id)
	if err != nil {
		return "", err
	}

	return `"` + strconv.Itoa(id) + `"` + attrs + ";", nil
}

// clusterStmt renders one subgraph statement with its label and member
// node statements. Cluster labels use a larger font than the rest of the
// graph.
func clusterStmt(g *Graph, s *Style, id int) (string, error) {
	label, err := escape(g.labels[id])
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `subgraph "cluster_%d" { fontsize=24; label="%s"; `, id, label)

	members := make([]string, 0, len(g.clusterNodes[id]))
	for _, node := range g.clusterNodes[id] {
		stmt, err := nodeStmt(g, s, node)
		if err != nil {
			return "", err
		}
		members = append(members, stmt)
	}
	b.WriteString(strings.Join(members, " "))
	b.WriteString(" }")

	return b.String(), nil
}

// edgeStmt renders one edge statement between two node IDs.
func edgeStmt(g *Graph, s *Style, e edge) (string, error) {
	attrs, err := attrList(g, s, e.id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`"%d" -> "%d"%s;`, e.from, e.to, attrs), nil
}
