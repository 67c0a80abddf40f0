// Package riggraph turns a skeletal rig — scene objects, bones, and the
// constraints between them — into a DOT graph description, collapsing
// left/right-symmetric bone pairs into single nodes and flagging pairs
// that break symmetry.
//
// 🦴 What is riggraph?
//
//	A pure-Go analysis library organized as small per-concern packages:
//		• naming/   — side-marker classification and name mirroring
//		              (Arm.L ↔ Arm.R, left_Foo ↔ right_Foo, …)
//		• rig/      — the relationship model: an arena of objects, bones,
//		              and constraints addressed by stable names, validated
//		              for duplicate bone names and parent cycles
//		• symmetry/ — the resolver: every bone receives exactly one verdict,
//		              Merged, Unpaired, or Broken
//		• dot/      — an abstract cluster/node/edge graph, style tables,
//		              and deterministic DOT serialization
//		• analyze/  — the graph builder and the one-call pipeline from a
//		              rig to DOT text plus symmetry-break warnings
//
// ✨ Why riggraph?
//
//   - Deterministic - identical input yields byte-identical DOT output,
//     so rendered images diff cleanly between runs
//   - Strict validation - duplicate bone names and parent cycles fail
//     fast, before any graph work begins
//   - Symmetry-aware - merged pairs render once; broken pairs render
//     twice with error styling and are reported as warnings, never as
//     failures
//   - Pure Go - no cgo; rendering the DOT text to pixels is left to an
//     external engine such as Graphviz
//
// Quick start:
//
//	r, err := rig.New(rig.Object{
//	    Name: "Character",
//	    Bones: []rig.Bone{
//	        {Name: "Spine"},
//	        {Name: "Arm.L", Parent: "Spine"},
//	        {Name: "Arm.R", Parent: "Spine"},
//	    },
//	})
//	if err != nil { ... }
//	text, broken, err := analyze.Render(r, dot.DefaultStyle())
//
// The resulting text is a complete digraph: one cluster per armature, one
// node labeled "Arm.↔" for the merged pair, and parent edges anchoring
// every root bone to its armature.
//
//	go get github.com/katalvlaran/riggraph
package riggraph
