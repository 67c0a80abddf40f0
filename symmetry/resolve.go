// Package symmetry implements the pairing algorithm over one armature.
package symmetry

import (
	"fmt"

	"github.com/katalvlaran/riggraph/naming"
	"github.com/katalvlaran/riggraph/rig"
)

// Resolve classifies every bone of the named armature into exactly one
// Verdict. Bones are seeded in declared order; both members of a pair are
// consumed together.
//
// Returns ErrRigNil or ErrNotArmature on invalid input. Symmetry breaks
// are reported through the Result, never as an error.
//
// Complexity: O(B · C) where B is the bone count and C the largest
// constraint list.
func Resolve(r *rig.Rig, armature string) (*Result, error) {
	if r == nil {
		return nil, ErrRigNil
	}
	obj, ok := r.Object(armature)
	if !ok || !obj.IsArmature() {
		return nil, fmt.Errorf("%w: %q", ErrNotArmature, armature)
	}

	res := &Result{
		Armature: armature,
		byBone:   make(map[string]int, len(obj.Bones)),
	}
	consumed := make(map[string]bool, len(obj.Bones))

	for i := range obj.Bones {
		seed := &obj.Bones[i]
		if consumed[seed.Name] {
			continue
		}
		consumed[seed.Name] = true

		tag := naming.Classify(seed.Name)
		if tag.Side == naming.Unsided {
			res.add(Verdict{Kind: Unpaired, Bone: seed.Name}, seed.Name)
			continue
		}

		opposite, ok := r.Bone(armature, tag.Opposite)
		if !ok || consumed[opposite.Name] {
			// Sided, but the mirror bone does not exist, or an earlier
			// seed whose spelling mirrors to the same canonical name
			// already claimed it ("Arm.LeFT" and "Arm.Left" both mirror
			// to "Arm.Right"): the bone stands alone rather than being
			// flagged.
			res.add(Verdict{Kind: Unpaired, Bone: seed.Name}, seed.Name)
			continue
		}
		consumed[opposite.Name] = true

		left, right := seed, opposite
		if tag.Side == naming.Right {
			left, right = opposite, seed
		}

		v := Verdict{Left: left.Name, Right: right.Name}
		switch {
		case !parentsMatch(left, right):
			v.Kind, v.Reason = Broken, ReasonParentMismatch
		case len(left.Constraints) != len(right.Constraints):
			v.Kind, v.Reason = Broken, ReasonConstraintCount
		case !constraintsMatch(left.Constraints, right.Constraints, armature):
			v.Kind, v.Reason = Broken, ReasonConstraintMismatch
		default:
			v.Kind = Merged
		}
		res.add(v, left.Name, right.Name)
	}

	return res, nil
}

// parentsMatch implements the parent condition: both parentless, one
// shared unsided parent, or mutually mirrored parents.
func parentsMatch(a, b *rig.Bone) bool {
	if a.Parent == "" || b.Parent == "" {
		return a.Parent == b.Parent
	}

	return naming.Match(a.Parent, b.Parent)
}

// constraintsMatch implements the constraint condition over two lists of
// equal length, position by position.
func constraintsMatch(a, b []rig.Constraint, armature string) bool {
	for i := range a {
		ca, cb := &a[i], &b[i]
		if ca.Name != cb.Name || ca.Kind != cb.Kind || ca.Target != cb.Target {
			return false
		}

		if ca.Target != armature {
			// The target's bone names are independent of this
			// armature's side convention: exact equality only.
			if ca.Subtarget != cb.Subtarget {
				return false
			}
			continue
		}

		// Inside the owning armature, subtargets symmetrize: blank on
		// both sides, the same unsided name, or mutual mirrors.
		if ca.Subtarget == "" && cb.Subtarget == "" {
			continue
		}
		if !naming.Match(ca.Subtarget, cb.Subtarget) {
			return false
		}
	}

	return true
}
