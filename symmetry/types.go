// Package symmetry declares verdict types and sentinel errors for the
// resolver.
package symmetry

import "errors"

// Sentinel errors for symmetry resolution.
var (
	// ErrRigNil is returned if a nil rig pointer is passed.
	ErrRigNil = errors.New("symmetry: rig is nil")

	// ErrNotArmature is returned when the named object is absent from the
	// rig or owns no bones.
	ErrNotArmature = errors.New("symmetry: object is not an armature")
)

// VerdictKind is the classification of one verdict.
type VerdictKind uint8

const (
	// Merged marks a pair that collapses into a single graph node.
	Merged VerdictKind = iota

	// Unpaired marks a bone with no pairing candidate.
	Unpaired

	// Broken marks a name-mirror pair that fails a symmetry condition.
	Broken
)

// String returns "merged", "unpaired", or "broken".
func (k VerdictKind) String() string {
	switch k {
	case Merged:
		return "merged"
	case Unpaired:
		return "unpaired"
	case Broken:
		return "broken"
	default:
		return "unknown"
	}
}

// Reason explains why a Broken pair failed.
type Reason uint8

const (
	// ReasonNone is set on Merged and Unpaired verdicts.
	ReasonNone Reason = iota

	// ReasonParentMismatch: the parents are neither one shared unsided
	// bone nor mutual mirrors.
	ReasonParentMismatch

	// ReasonConstraintCount: the constraint lists differ in length.
	ReasonConstraintCount

	// ReasonConstraintMismatch: a positional constraint pair differs in
	// name, kind, target, or subtarget.
	ReasonConstraintMismatch
)

// String returns a short human-readable cause for warning display.
func (re Reason) String() string {
	switch re {
	case ReasonParentMismatch:
		return "parents do not match across symmetry"
	case ReasonConstraintCount:
		return "constraint counts differ"
	case ReasonConstraintMismatch:
		return "constraints do not match across symmetry"
	default:
		return ""
	}
}

// Verdict classifies one bone or one bone pair.
type Verdict struct {
	// Kind is Merged, Unpaired, or Broken.
	Kind VerdictKind

	// Bone is the single member of an Unpaired verdict.
	Bone string

	// Left and Right are the pair members of a Merged or Broken verdict,
	// normalized so Left always names the left-sided bone.
	Left, Right string

	// Reason is set on Broken verdicts.
	Reason Reason
}

// Result maps every bone of one armature to exactly one verdict.
type Result struct {
	// Armature names the resolved armature object.
	Armature string

	// Verdicts in seed order (the armature's declared bone order).
	Verdicts []Verdict

	byBone map[string]int // bone name → index into Verdicts
}

// Of returns the verdict containing the named bone.
func (res *Result) Of(bone string) (Verdict, bool) {
	i, ok := res.byBone[bone]
	if !ok {
		return Verdict{}, false
	}

	return res.Verdicts[i], true
}

// Broken returns the Broken verdicts in seed order, for warning display.
func (res *Result) Broken() []Verdict {
	var out []Verdict
	for _, v := range res.Verdicts {
		if v.Kind == Broken {
			out = append(out, v)
		}
	}

	return out
}

// add appends v and indexes every member bone.
func (res *Result) add(v Verdict, bones ...string) {
	res.Verdicts = append(res.Verdicts, v)
	for _, b := range bones {
		res.byBone[b] = len(res.Verdicts) - 1
	}
}
