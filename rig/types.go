// Package rig declares the entity types and sentinel errors of the
// relationship model.
package rig

import "errors"

// Sentinel errors for rig construction.
var (
	// ErrDuplicateObject indicates two supplied objects share a name.
	ErrDuplicateObject = errors.New("rig: duplicate object name")

	// ErrDuplicateBone indicates two bones within one armature share a name.
	ErrDuplicateBone = errors.New("rig: duplicate bone name within armature")

	// ErrDanglingParent indicates a bone references a parent bone that does
	// not exist in its armature.
	ErrDanglingParent = errors.New("rig: parent bone not found")

	// ErrParentCycle indicates a bone- or object-parent chain loops.
	ErrParentCycle = errors.New("rig: parent cycle detected")
)

// Kind identifies a constraint type. The enumeration is closed: two
// constraints are kind-compatible exactly when their Kind values compare
// equal, with no further inspection.
type Kind uint8

const (
	// KindOther covers constraint types with no dedicated tag.
	KindOther Kind = iota

	// KindIK is an inverse-kinematics constraint.
	KindIK

	// KindCopyLocation copies the target's location.
	KindCopyLocation

	// KindCopyRotation copies the target's rotation.
	KindCopyRotation

	// KindCopyTransforms copies the target's full transform.
	KindCopyTransforms

	// KindStretchTo stretches the owner toward the target.
	KindStretchTo

	// KindDampedTrack points one axis of the owner at the target.
	KindDampedTrack

	// KindLimitRotation clamps the owner's rotation. It takes no target.
	KindLimitRotation
)

// String returns the conventional constraint-type name.
func (k Kind) String() string {
	switch k {
	case KindIK:
		return "IK"
	case KindCopyLocation:
		return "Copy Location"
	case KindCopyRotation:
		return "Copy Rotation"
	case KindCopyTransforms:
		return "Copy Transforms"
	case KindStretchTo:
		return "Stretch To"
	case KindDampedTrack:
		return "Damped Track"
	case KindLimitRotation:
		return "Limit Rotation"
	default:
		return "Other"
	}
}

// Constraint relates its owner (the Bone or Object it is listed on) to an
// optional target.
type Constraint struct {
	// Name labels the constraint, e.g. "IK" or "Copy Rotation.001".
	Name string

	// Kind tags the constraint type.
	Kind Kind

	// Target names the target object. Empty for targetless kinds such as
	// KindLimitRotation.
	Target string

	// Subtarget names a bone inside Target. Meaningful only when Target
	// is an armature.
	Subtarget string
}

// Bone is one bone of an armature.
type Bone struct {
	// Name is unique within the owning armature.
	Name string

	// Parent names the parent bone in the same armature; empty for roots.
	Parent string

	// Deform marks bones that deform meshes; it only affects styling.
	Deform bool

	// Constraints in declared order. Order matters: the symmetry resolver
	// compares constraint lists position by position.
	Constraints []Constraint
}

// Object is a scene object. An Object with a non-empty Bones list is an
// armature and owns those bones.
type Object struct {
	// Name is unique within the rig.
	Name string

	// Parent names the parent object. It may reference an object outside
	// the rig, in which case the relation resolves to nothing.
	Parent string

	// ParentBone, when set, parents the object to that bone of Parent
	// rather than to the object itself.
	ParentBone string

	// Constraints in declared order.
	Constraints []Constraint

	// Bones in declared order; non-empty marks the object as an armature.
	Bones []Bone
}

// IsArmature reports whether the object owns bones.
func (o *Object) IsArmature() bool { return len(o.Bones) > 0 }
