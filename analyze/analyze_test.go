package analyze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/riggraph/analyze"
	"github.com/katalvlaran/riggraph/dot"
	"github.com/katalvlaran/riggraph/rig"
	"github.com/katalvlaran/riggraph/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRig builds a validated rig or fails the test.
func newRig(t *testing.T, objects ...rig.Object) *rig.Rig {
	t.Helper()
	r, err := rig.New(objects...)
	require.NoError(t, err)

	return r
}

// encode serializes a built graph with the default style.
func encode(t *testing.T, g *dot.Graph) string {
	t.Helper()
	text, err := dot.Encode(g, nil)
	require.NoError(t, err)

	return text
}

func TestGraph_NilRig(t *testing.T) {
	_, err := analyze.Graph(nil)
	assert.ErrorIs(t, err, analyze.ErrRigNil)

	_, _, err = analyze.Render(nil, nil)
	assert.ErrorIs(t, err, analyze.ErrRigNil)
}

// TestGraph_MergedPair collapses a clean pair into one bilateral node.
func TestGraph_MergedPair(t *testing.T) {
	r := newRig(t, rig.Object{
		Name: "Rig",
		Bones: []rig.Bone{
			{Name: "Spine"},
			{Name: "Arm.L", Parent: "Spine"},
			{Name: "Arm.R", Parent: "Spine"},
		},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Empty(t, res.Broken)

	// Head, Spine, and the collapsed pair; root edge plus one parent edge.
	assert.Equal(t, 3, res.Graph.NodeCount())
	assert.Equal(t, 2, res.Graph.EdgeCount())
	assert.Equal(t, 1, res.Graph.ClusterCount())

	text := encode(t, res.Graph)
	assert.Contains(t, text, `label="Arm.↔"`)
	assert.NotContains(t, text, `label="Arm.L"`)
	assert.NotContains(t, text, `label="Arm.R"`)
}

// TestGraph_BrokenPair keeps both bones as separate error-styled nodes
// and surfaces the break as a warning.
func TestGraph_BrokenPair(t *testing.T) {
	r := newRig(t, rig.Object{
		Name: "Rig",
		Bones: []rig.Bone{
			{Name: "Spine"},
			{Name: "Torso"},
			{Name: "Arm.L", Parent: "Spine"},
			{Name: "Arm.R", Parent: "Torso"},
		},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)

	require.Len(t, res.Broken, 1)
	assert.Equal(t, symmetry.Broken, res.Broken[0].Kind)
	assert.Equal(t, symmetry.ReasonParentMismatch, res.Broken[0].Reason)
	assert.Equal(t, "Arm.L", res.Broken[0].Left)

	text := encode(t, res.Graph)
	assert.Contains(t, text, `label="Arm.L"`)
	assert.Contains(t, text, `label="Arm.R"`)
	assert.Equal(t, 2, strings.Count(text, "lightcoral"))
}

// TestGraph_UnpairedBone renders a lone unsided bone as a single node.
func TestGraph_UnpairedBone(t *testing.T) {
	r := newRig(t, rig.Object{
		Name:  "Rig",
		Bones: []rig.Bone{{Name: "Head"}},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Empty(t, res.Broken)

	// Head node plus the bone; the parentless bone points at the head.
	assert.Equal(t, 2, res.Graph.NodeCount())
	assert.Equal(t, 1, res.Graph.EdgeCount())
	assert.Contains(t, encode(t, res.Graph), `"2" -> "1";`)
}

// TestGraph_CollapsedConstraintEdge emits one edge for a constraint both
// pair members share.
func TestGraph_CollapsedConstraintEdge(t *testing.T) {
	ik := rig.Constraint{Name: "IK", Kind: rig.KindIK, Target: "Ctrl"}
	r := newRig(t,
		rig.Object{
			Name: "Rig",
			Bones: []rig.Bone{
				{Name: "Hand.L", Constraints: []rig.Constraint{ik}},
				{Name: "Hand.R", Constraints: []rig.Constraint{ik}},
			},
		},
		rig.Object{Name: "Ctrl"},
	)

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Empty(t, res.Broken)

	// Head, the merged pair, and the free target node.
	assert.Equal(t, 3, res.Graph.NodeCount())
	// One collapsed constraint edge and one collapsed root edge.
	assert.Equal(t, 2, res.Graph.EdgeCount())
	assert.Equal(t, 1, strings.Count(encode(t, res.Graph), `label="IK"`))
}

// TestGraph_SubtargetResolvesToBoneNode routes a constraint at a named
// bone of an armature target.
func TestGraph_SubtargetResolvesToBoneNode(t *testing.T) {
	r := newRig(t, rig.Object{
		Name: "Rig",
		Bones: []rig.Bone{
			{Name: "Root"},
			{Name: "Hand.L", Constraints: []rig.Constraint{
				{Name: "Copy Rotation", Kind: rig.KindCopyRotation, Target: "Rig", Subtarget: "Root"},
			}},
			{Name: "Hand.R", Constraints: []rig.Constraint{
				{Name: "Copy Rotation", Kind: rig.KindCopyRotation, Target: "Rig", Subtarget: "Root"},
			}},
		},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Empty(t, res.Broken)

	// IDs in declaration order: cluster 0, head 1, Root 2, merged pair 3.
	text := encode(t, res.Graph)
	assert.Contains(t, text, `"3" -> "2" [label="Copy Rotation"`)
}

// TestGraph_TargetOutsideRig drops constraints whose target object is
// not part of the analyzed set.
func TestGraph_TargetOutsideRig(t *testing.T) {
	r := newRig(t, rig.Object{
		Name: "Rig",
		Bones: []rig.Bone{
			{Name: "Head", Constraints: []rig.Constraint{
				{Name: "Damped Track", Kind: rig.KindDampedTrack, Target: "Camera"},
			}},
		},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	// Only the root edge remains.
	assert.Equal(t, 1, res.Graph.EdgeCount())
	assert.NotContains(t, encode(t, res.Graph), "Damped Track")
}

// TestGraph_TargetlessConstraint relates nothing.
func TestGraph_TargetlessConstraint(t *testing.T) {
	r := newRig(t, rig.Object{
		Name: "Rig",
		Bones: []rig.Bone{
			{Name: "Head", Constraints: []rig.Constraint{
				{Name: "Limit Rotation", Kind: rig.KindLimitRotation},
			}},
		},
	})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Graph.EdgeCount())
}

// TestGraph_ObjectParentBone parents a boneless object to a specific
// bone of an armature.
func TestGraph_ObjectParentBone(t *testing.T) {
	r := newRig(t,
		rig.Object{
			Name:  "Rig",
			Bones: []rig.Bone{{Name: "Head"}},
		},
		rig.Object{Name: "Hat", Parent: "Rig", ParentBone: "Head"},
	)

	res, err := analyze.Graph(r)
	require.NoError(t, err)

	// cluster 0, head 1, Head bone 2, Hat free node 3.
	text := encode(t, res.Graph)
	assert.Contains(t, text, `label="Hat"`)
	assert.Contains(t, text, `"2" -> "1";`) // root bone to armature head
	assert.Contains(t, text, `"3" -> "2";`) // object to its parent bone
}

// TestGraph_ParentOutsideRig resolves an out-of-rig object parent to
// nothing.
func TestGraph_ParentOutsideRig(t *testing.T) {
	r := newRig(t, rig.Object{Name: "Hat", Parent: "Elsewhere"})

	res, err := analyze.Graph(r)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Graph.NodeCount())
	assert.Equal(t, 0, res.Graph.EdgeCount())
}

// TestRender_Deterministic runs the full pipeline twice on identical
// input and demands byte-identical output.
func TestRender_Deterministic(t *testing.T) {
	build := func() *rig.Rig {
		return newRig(t,
			rig.Object{
				Name: "Rig",
				Bones: []rig.Bone{
					{Name: "Spine", Deform: true},
					{Name: "Arm.L", Parent: "Spine", Deform: true},
					{Name: "Arm.R", Parent: "Spine", Deform: true},
					{Name: "Hand.L", Parent: "Arm.L", Constraints: []rig.Constraint{
						{Name: "IK", Kind: rig.KindIK, Target: "Ctrl"},
					}},
					{Name: "Hand.R", Parent: "Arm.R"},
				},
			},
			rig.Object{Name: "Ctrl", Parent: "Rig"},
		)
	}

	s := dot.DefaultStyle()
	s.Title = "Example Rig"

	first, broken1, err := analyze.Render(build(), s)
	require.NoError(t, err)
	second, broken2, err := analyze.Render(build(), s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, broken1, broken2)

	// Hand pair breaks on constraint count and stays uncollapsed.
	require.Len(t, broken1, 1)
	assert.Equal(t, symmetry.ReasonConstraintCount, broken1[0].Reason)
	assert.Contains(t, first, `label="Arm.↔"`)
	assert.Contains(t, first, `label="Hand.L"`)
	assert.Contains(t, first, `label="Example Rig"`)
}

// TestLegend samples every styling the builder emits.
func TestLegend(t *testing.T) {
	g := analyze.Legend()
	assert.Equal(t, 1, g.ClusterCount())
	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())

	s := dot.DefaultStyle()
	s.RankDir = "LR"
	text, err := dot.Encode(g, s)
	require.NoError(t, err)
	assert.Contains(t, text, `label="Legend"`)
	assert.Contains(t, text, `label="Symmetric Bone.↔"`)
	assert.Contains(t, text, `"style"="invisible"`)
}
