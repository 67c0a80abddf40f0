// Package analyze provides the explanatory legend graph.
package analyze

import (
	"github.com/katalvlaran/riggraph/dot"
	"github.com/katalvlaran/riggraph/naming"
)

// Legend builds a small graph explaining every style Graph emits: a
// parent edge, a constraint edge, and one sample node per bone styling.
// Invisible edges arrange the samples into rows. Encode it with a style
// whose RankDir is "LR" for the conventional layout.
func Legend() *dot.Graph {
	g := dot.NewGraph()
	cluster := g.AddCluster("Legend")

	parent := g.AddNode(cluster, "Parent")
	child := g.AddNode(cluster, "Child")
	g.AddEdge(child, parent, "", "parent")

	subject := g.AddNode(cluster, "Subject")
	target := g.AddNode(cluster, "Target")
	g.AddEdge(subject, target, "Constraint", "constraint")

	deforming := g.AddNode(cluster, "Deforming Bone", "bone", "deforming")
	root := g.AddNode(cluster, "Root", "bone", "root")
	g.AddEdge(deforming, root, "", "invisible")

	symmetric := g.AddNode(cluster, "Symmetric Bone."+naming.MirrorSymbol, "bone")
	breaking := g.AddNode(cluster, "Symmetry-Breaking Bone", "bone", "antisymmetric")
	g.AddEdge(symmetric, breaking, "", "invisible")

	return g
}
