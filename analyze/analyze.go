// Package analyze implements the graph builder and the pipeline entry
// points.
package analyze

import (
	"errors"

	"github.com/katalvlaran/riggraph/dot"
	"github.com/katalvlaran/riggraph/naming"
	"github.com/katalvlaran/riggraph/rig"
	"github.com/katalvlaran/riggraph/symmetry"
)

// ErrRigNil is returned if a nil rig pointer is passed.
var ErrRigNil = errors.New("analyze: rig is nil")

// headLabel is the label of every object head node.
const headLabel = "•"

// Result is the outcome of building one relationship graph.
type Result struct {
	// Graph is the assembled abstract graph, ready for dot.Encode.
	Graph *dot.Graph

	// Broken lists the symmetry breaks found while resolving the rig's
	// armatures, in object then seed order. They are warnings: the bones
	// involved still appear in the Graph, styled as antisymmetric.
	Broken []symmetry.Verdict
}

// builder accumulates the graph across the three construction passes.
type builder struct {
	r *rig.Rig
	g *dot.Graph

	objNodes map[string]int            // object name → head or free node
	bones    map[string]map[string]int // armature name → bone name → node
	results  map[string]*symmetry.Result
}

// Graph builds the relationship graph of the whole rig. Construction
// runs in three passes: declare every object's cluster and nodes, then
// every constraint edge, then every parent edge. Declaring all nodes
// first guarantees a parent or constraint edge for every relation whose
// two ends are both in the rig, regardless of declaration order.
//
// Returns ErrRigNil for a nil rig.
//
// Complexity: O(total bones · largest constraint list)
func Graph(r *rig.Rig) (*Result, error) {
	if r == nil {
		return nil, ErrRigNil
	}

	b := &builder{
		r:        r,
		g:        dot.NewGraph(),
		objNodes: make(map[string]int),
		bones:    make(map[string]map[string]int),
		results:  make(map[string]*symmetry.Result),
	}
	res := &Result{}

	for _, name := range r.Objects() {
		if err := b.declareObject(name, res); err != nil {
			return nil, err
		}
	}
	for _, name := range r.Objects() {
		b.constraintEdges(name)
	}
	for _, name := range r.Objects() {
		b.parentEdges(name)
	}

	res.Graph = b.g

	return res, nil
}

// Render builds the rig's graph and serializes it in one call. The
// returned verdicts are the symmetry breaks to surface as warnings.
func Render(r *rig.Rig, s *dot.Style) (string, []symmetry.Verdict, error) {
	res, err := Graph(r)
	if err != nil {
		return "", nil, err
	}

	text, err := dot.Encode(res.Graph, s)
	if err != nil {
		return "", nil, err
	}

	return text, res.Broken, nil
}

// declareObject declares the cluster, head node, and bone nodes of an
// armature, or the free node of any other object.
func (b *builder) declareObject(name string, out *Result) error {
	obj, _ := b.r.Object(name)
	if !obj.IsArmature() {
		b.objNodes[name] = b.g.AddFreeNode(name, "free")

		return nil
	}

	res, err := symmetry.Resolve(b.r, name)
	if err != nil {
		return err
	}
	b.results[name] = res
	out.Broken = append(out.Broken, res.Broken()...)

	cluster := b.g.AddCluster(name)
	b.objNodes[name] = b.g.AddNode(cluster, headLabel, "head", "armature_head")

	nodes := make(map[string]int, len(obj.Bones))
	b.bones[name] = nodes

	for _, v := range res.Verdicts {
		switch v.Kind {
		case symmetry.Unpaired:
			bone, _ := b.r.Bone(name, v.Bone)
			nodes[v.Bone] = b.g.AddNode(cluster, bone.Name,
				boneCategories(bone, "asymmetric")...)

		case symmetry.Merged:
			left, _ := b.r.Bone(name, v.Left)
			right, _ := b.r.Bone(name, v.Right)

			cats := []string{"bone"}
			if left.Deform || right.Deform {
				cats = append(cats, "deforming")
			}
			cats = append(cats, "left_symmetric")
			if left.Parent == "" {
				cats = append(cats, "root")
			}

			// Both names resolve to the single collapsed node.
			id := b.g.AddNode(cluster, naming.Classify(left.Name).Bilateral, cats...)
			nodes[v.Left], nodes[v.Right] = id, id

		case symmetry.Broken:
			left, _ := b.r.Bone(name, v.Left)
			right, _ := b.r.Bone(name, v.Right)
			nodes[v.Left] = b.g.AddNode(cluster, left.Name,
				boneCategories(left, "antisymmetric")...)
			nodes[v.Right] = b.g.AddNode(cluster, right.Name,
				boneCategories(right, "antisymmetric")...)
		}
	}

	return nil
}

// boneCategories assembles the category list of a single-bone node.
func boneCategories(bone *rig.Bone, kind string) []string {
	cats := []string{"bone"}
	if bone.Deform {
		cats = append(cats, "deforming")
	}
	cats = append(cats, kind)
	if bone.Parent == "" {
		cats = append(cats, "root")
	}

	return cats
}

// constraintEdges declares the constraint edges owned by one object and
// its bones. A Merged pair contributes the left member's edges only.
func (b *builder) constraintEdges(name string) {
	obj, _ := b.r.Object(name)
	b.edgesFrom(b.objNodes[name], obj.Constraints)

	res, ok := b.results[name]
	if !ok {
		return
	}
	for _, v := range res.Verdicts {
		owner := v.Bone
		if v.Kind != symmetry.Unpaired {
			owner = v.Left
		}
		bone, _ := b.r.Bone(name, owner)
		b.edgesFrom(b.bones[name][owner], bone.Constraints)

		if v.Kind == symmetry.Broken {
			right, _ := b.r.Bone(name, v.Right)
			b.edgesFrom(b.bones[name][v.Right], right.Constraints)
		}
	}
}

// edgesFrom declares one labeled edge per resolvable constraint.
func (b *builder) edgesFrom(origin int, constraints []rig.Constraint) {
	for i := range constraints {
		c := &constraints[i]
		if c.Target == "" {
			// Targetless kinds such as Limit Rotation relate nothing.
			continue
		}
		dest, ok := b.destination(c)
		if !ok || dest == origin {
			continue
		}
		b.g.AddEdge(origin, dest, c.Name, "constraint")
	}
}

// destination resolves a constraint to a node: the subtarget bone when
// the target is an armature in the rig, otherwise the target's head or
// free node. Targets outside the rig, and subtargets naming no bone,
// resolve to nothing.
func (b *builder) destination(c *rig.Constraint) (int, bool) {
	target, ok := b.r.Object(c.Target)
	if !ok {
		return 0, false
	}
	if c.Subtarget != "" && target.IsArmature() {
		id, ok := b.bones[c.Target][c.Subtarget]

		return id, ok
	}

	return b.objNodes[c.Target], true
}

// parentEdges declares the parent edges of one object: bone-to-bone
// edges, the implicit root edge from each parentless bone to the
// armature's head node, and the object's own parent edge.
func (b *builder) parentEdges(name string) {
	obj, _ := b.r.Object(name)

	if res, ok := b.results[name]; ok {
		head := b.objNodes[name]
		for _, v := range res.Verdicts {
			switch v.Kind {
			case symmetry.Unpaired:
				b.parentBoneEdge(name, v.Bone, head)
			case symmetry.Merged:
				b.parentBoneEdge(name, v.Left, head)
			case symmetry.Broken:
				b.parentBoneEdge(name, v.Left, head)
				b.parentBoneEdge(name, v.Right, head)
			}
		}
	}

	if obj.Parent == "" {
		return
	}
	parent, ok := b.r.Object(obj.Parent)
	if !ok {
		// Parents outside the rig resolve to nothing.
		return
	}
	dest := b.objNodes[obj.Parent]
	if obj.ParentBone != "" && parent.IsArmature() {
		if id, ok := b.bones[obj.Parent][obj.ParentBone]; ok {
			dest = id
		}
	}
	b.g.AddEdge(b.objNodes[name], dest, "", "parent")
}

// parentBoneEdge declares one bone's parent edge. Parentless bones point
// at the armature's head node instead.
func (b *builder) parentBoneEdge(armature, bone string, head int) {
	bn, _ := b.r.Bone(armature, bone)
	from := b.bones[armature][bone]
	if bn.Parent == "" {
		b.g.AddEdge(from, head, "", "parent")

		return
	}

	to := b.bones[armature][bn.Parent]
	if to == from {
		// A merged pair parented to each other's mirrors collapses to a
		// self loop, which carries no information.
		return
	}
	b.g.AddEdge(from, to, "", "parent")
}
