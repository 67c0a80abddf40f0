// Package analyze turns a validated rig into the abstract relationship
// graph and drives the full pipeline from rig to DOT text.
//
// What
//
//   - Graph — builds a dot.Graph from a rig: one cluster per armature,
//     one node per bone verdict, one free node per non-armature object,
//     one edge per constraint and per parent relation.
//   - Legend — builds a small explanatory graph naming every style used
//     by Graph.
//   - Render — Graph followed by dot.Encode, surfacing the symmetry
//     breaks found along the way.
//
// Node shape
//
// Armature objects become labeled clusters. Each cluster holds an
// unobtrusive "•" head node standing in for the object itself, since
// edges cannot attach to clusters. Merged bone pairs collapse into one
// node labeled with the pair's bilateral name; Broken pairs keep two
// nodes carrying the "antisymmetric" category so the default style
// flags them. Bones with no parent bone gain the "root" category and a
// parent edge to their armature's head node. Objects without bones
// become free nodes outside any cluster.
//
// Edge shape
//
// Constraint edges are labeled with the constraint's name and run from
// the owner's node to the destination: the target's head or free node,
// or a bone node when the target is an armature and a subtarget is
// named. Constraints whose target is outside the rig, or whose
// destination resolves to the owner's own node, emit nothing. A Merged
// pair emits the left member's edges only, so matching constraint and
// parent relations appear once. Parent edges are unlabeled and carry
// the "parent" category.
//
// Determinism
//
//	Objects are processed in the rig's declared order and bones in
//	verdict (seed) order; all node declarations precede all constraint
//	edges, which precede all parent edges. Identical rigs therefore
//	yield identical graphs and, through dot.Encode, identical bytes.
//
// Errors
//
//   - ErrRigNil — a nil rig was passed.
//
// Symmetry breaks are never errors: they are returned as warnings in
// the Result and the bones still appear in the graph.
package analyze
