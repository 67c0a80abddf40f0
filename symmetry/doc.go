// Package symmetry pairs the bones of one armature across the left/right
// naming convention and classifies every bone into exactly one verdict.
//
// What
//
// Resolve walks the armature's bones in declared order. Each bone not yet
// consumed by an earlier pair becomes the seed of one Verdict:
//
//   - Unpaired — the bone's name is unsided, or no unconsumed bone with
//     the mirror name exists. Several case-class spellings can mirror to
//     one canonical name ("Arm.LeFT" and "Arm.Left" both mirror to
//     "Arm.Right"); the earliest seed claims the mirror and later
//     spellings stand alone. The bone stands alone in the graph.
//   - Merged — the mirror bone exists and the pair passes both the parent
//     condition and the constraint condition. The pair collapses into a
//     single graph node.
//   - Broken — the mirror bone exists but one condition fails. Both bones
//     stay separate, error-styled, and the pair is reported as a warning.
//
// Both members of a Merged or Broken pair are consumed together, so a pair
// is classified once, never twice from each side, and merging is
// all-or-nothing.
//
// Conditions
//
// The parent condition holds when both bones are parentless, when they
// share one unsided parent, or when their parents are mutual mirrors. Any
// other arrangement — including one side parented and the other not —
// fails it.
//
// The constraint condition compares the two constraint lists position by
// position (order-sensitive; equal sets in a different order do not
// merge). Each pair of constraints must agree on name, kind, and target —
// the identical target object, targets are never mirrored. Subtargets
// follow the symmetrize convention: when the target is the armature that
// owns the pair, the subtargets must be blank, mutual mirrors, or the
// same unsided name; when the target is any other object, the subtargets
// must be literally equal, since that object's bone names owe nothing to
// this armature's side convention.
//
// Determinism
//
//	Seeding follows the armature's declared bone order, so Verdicts are
//	reproducible across runs and downstream graph output is byte-stable.
//
// Errors
//
//   - ErrRigNil      — the rig pointer is nil.
//   - ErrNotArmature — the named object is absent or owns no bones.
//
// Symmetry breaks are not errors: Resolve succeeds and reports Broken
// verdicts through the Result for the caller to surface as warnings.
package symmetry
