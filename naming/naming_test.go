package naming_test

import (
	"testing"

	"github.com/katalvlaran/riggraph/naming"
	"github.com/stretchr/testify/assert"
)

// TestClassify_SingleLetterSuffix covers the highest-priority marker rule:
// separator + l/L/r/R at the end of the name.
func TestClassify_SingleLetterSuffix(t *testing.T) {
	cases := []struct {
		name      string
		side      naming.Side
		opposite  string
		bilateral string
	}{
		{"Arm.L", naming.Left, "Arm.R", "Arm.↔"},
		{"Arm.R", naming.Right, "Arm.L", "Arm.↔"},
		{"Arm_l", naming.Left, "Arm_r", "Arm_↔"},
		{"Arm-r", naming.Right, "Arm-l", "Arm-↔"},
		{"Arm L", naming.Left, "Arm R", "Arm ↔"},
	}
	for _, tc := range cases {
		got := naming.Classify(tc.name)
		assert.Equal(t, tc.side, got.Side, "side of %q", tc.name)
		assert.Equal(t, tc.opposite, got.Opposite, "opposite of %q", tc.name)
		assert.Equal(t, tc.bilateral, got.Bilateral, "bilateral of %q", tc.name)
	}
}

// TestClassify_WordMarkers covers whole-word suffixes and prefixes in all
// three case classes.
func TestClassify_WordMarkers(t *testing.T) {
	cases := []struct {
		name     string
		side     naming.Side
		opposite string
	}{
		{"HandLEFT", naming.Left, "HandRIGHT"},
		{"HandLeft", naming.Left, "HandRight"},
		{"Handleft", naming.Left, "Handright"},
		{"HandRIGHT", naming.Right, "HandLEFT"},
		{"LeftHand", naming.Left, "RightHand"},
		{"rightHand", naming.Right, "leftHand"},
		// Only the first two letters fix the case class; the rest is free.
		{"HandRIghT", naming.Right, "HandLEFT"},
		{"HandRigHT", naming.Right, "HandLeft"},
	}
	for _, tc := range cases {
		got := naming.Classify(tc.name)
		assert.Equal(t, tc.side, got.Side, "side of %q", tc.name)
		assert.Equal(t, tc.opposite, got.Opposite, "opposite of %q", tc.name)
	}
}

// TestClassify_SingleLetterPrefix covers L/l/R/r + separator at the start.
func TestClassify_SingleLetterPrefix(t *testing.T) {
	got := naming.Classify("R_Arm")
	assert.Equal(t, naming.Right, got.Side)
	assert.Equal(t, "L_Arm", got.Opposite)
	assert.Equal(t, "↔_Arm", got.Bilateral)

	got = naming.Classify("l.Foot")
	assert.Equal(t, naming.Left, got.Side)
	assert.Equal(t, "r.Foot", got.Opposite)
}

// TestClassify_NumericSuffix verifies that duplicate counters are carried
// through mirroring untouched.
func TestClassify_NumericSuffix(t *testing.T) {
	got := naming.Classify("Arm.L.001")
	assert.Equal(t, naming.Left, got.Side)
	assert.Equal(t, "Arm.R.001", got.Opposite)
	assert.Equal(t, "Arm.↔.001", got.Bilateral)
}

// TestClassify_Priority pins the documented rule order: suffix beats
// prefix, and the single-letter form beats the word form.
func TestClassify_Priority(t *testing.T) {
	// Side-tagged at both ends: the suffix wins.
	got := naming.Classify("L_Arm_R")
	assert.Equal(t, naming.Right, got.Side)
	assert.Equal(t, "L_Arm_L", got.Opposite)

	// Word suffix and single-letter suffix: ".R" wins over "...Right".
	got = naming.Classify("TightRight.R")
	assert.Equal(t, naming.Right, got.Side)
	assert.Equal(t, "TightRight.L", got.Opposite)
}

// TestClassify_Unsided verifies that ordinary names stay unsided.
func TestClassify_Unsided(t *testing.T) {
	for _, name := range []string{"Spine", "Head", "Torso.001", "", "Lamp", "relax"} {
		got := naming.Classify(name)
		assert.Equal(t, naming.Unsided, got.Side, "%q should be unsided", name)
		assert.Empty(t, got.Opposite, "%q", name)
		assert.Empty(t, got.Bilateral, "%q", name)
	}
}

// TestMirror_RoundTrip asserts Mirror(Mirror(n)) == n for sided names and
// that unsided names have no mirror.
func TestMirror_RoundTrip(t *testing.T) {
	sided := []string{
		"Arm.L", "Arm.R", "Leg_l", "Leg_r", "R-Hand", "l Foot",
		"HandLeft", "HandRIGHT", "leftEye", "RightEar", "Toe.L.003",
	}
	for _, name := range sided {
		m, ok := naming.Mirror(name)
		assert.True(t, ok, "%q should be sided", name)
		back, ok := naming.Mirror(m)
		assert.True(t, ok, "mirror %q of %q should be sided", m, name)
		assert.Equal(t, name, back, "round trip of %q", name)
	}

	for _, name := range []string{"Spine", "Head", ""} {
		_, ok := naming.Mirror(name)
		assert.False(t, ok, "%q should have no mirror", name)
	}
}

// TestMatch covers the cross-symmetry name correspondence used by the
// resolver for parents and subtargets.
func TestMatch(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Spine", "Spine", true},    // same unsided name
		{"Arm.L", "Arm.L", false},   // sided name never pairs with itself
		{"Arm.L", "Arm.R", true},    // mutual mirrors
		{"Arm.R", "Arm.L", true},    // symmetric in its arguments
		{"Arm.L", "Leg.R", false},   // opposite sides, different stems
		{"Arm.L", "Spine", false},   // sided vs unsided
		{"Spine", "Torso", false},   // different unsided names
		{"Arm.L", "Arm.l", false},   // case must mirror exactly
		{"LeftArm", "RightArm", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, naming.Match(tc.a, tc.b), "Match(%q, %q)", tc.a, tc.b)
	}
}
