// Package dot holds an abstract cluster/node/edge graph, style tables,
// and a deterministic serializer into the DOT language for an external
// layout/rendering engine such as Graphviz.
//
// What
//
//   - Graph — nodes (free-standing or grouped into labeled clusters) and
//     directed edges, each optionally labeled and tagged with categories.
//     Every entity is keyed by a small integer ID minted in declaration
//     order; display labels are never used as identifiers, since labels
//     may collide or need escaping.
//   - Style — a table from category names to ordered DOT attribute lists,
//     plus the graph-wide font name, rank direction, and title.
//     DefaultStyle ships the standard rig styling; StyleFromYAML loads a
//     caller-supplied table.
//   - Encode — turns a Graph plus a Style into a single DOT string.
//
// Categories
//
// A category is a lightweight, reusable style tag. Nodes and edges carry
// category lists; Encode expands each category through the Style table
// into verbatim attribute pairs. Categories with no table entry emit
// nothing, so semantic tags ("bone", "head") cost nothing unless styled.
//
// Determinism
//
//	Output is byte-stable for identical input: free nodes, clusters,
//	cluster members, and edges are emitted in declaration order; attribute
//	order is the label first, then category attributes in category-list
//	order, then table order. No map iteration reaches the output path.
//
// Escaping
//
//	Quotation marks and backslashes in labels, titles, and attribute text
//	are backslash-escaped. Text containing control characters cannot be
//	made safe and fails encoding with ErrUnencodable.
//
// Errors
//
//   - ErrGraphNil    — a nil graph was passed to Encode.
//   - ErrUnencodable — a label or attribute cannot be escaped.
//   - ErrBadStyle    — a YAML style table cannot be parsed.
package dot
