// Package rig holds the relationship model: an immutable arena of scene
// objects, bones, and constraints, addressed by stable names instead of
// live pointers.
//
// What
//
//   - Object — a scene object with a unique name, an optional parent
//     object, ordered constraints, and (for armatures) an ordered list of
//     Bones.
//   - Bone — a bone with a name unique within its armature, an optional
//     parent bone in the same armature, a Deform flag, and ordered
//     constraints.
//   - Constraint — a named, kind-tagged relation from its owner to an
//     optional target object, optionally narrowed to a Subtarget bone
//     inside that target.
//   - Rig — built once by New from a caller-supplied, already-filtered set
//     of objects. Which objects and bones participate (all, visible,
//     selected) is the caller's decision; the rig makes none of its own.
//
// Validation
//
// New validates the whole arena before returning, so downstream consumers
// can assume a valid DAG:
//
//   - ErrDuplicateObject — two objects share a name.
//   - ErrDuplicateBone   — two bones in one armature share a name.
//   - ErrDanglingParent  — a bone names a parent that does not exist in
//     its armature.
//   - ErrParentCycle     — a bone- or object-parent chain loops.
//
// An Object's Parent may name an object outside the rig; the reference
// simply resolves to nothing. Bone parents must stay inside their own
// armature.
//
// Determinism
//
//	All listing queries (Objects, Bones, ChildBones, ChildObjects) return
//	names in declared order. Child indexes are recomputed from the parent
//	pointers on each call rather than stored, so the two views cannot
//	drift apart.
//
// Errors are sentinel values; branch on them with errors.Is.
package rig
