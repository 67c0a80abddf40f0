// Package naming classifies rig entity names by their left/right side
// markers and computes mirror names, following the naming convention that
// bilateral rigs use for mirrorable bones.
//
// What
//
//   - Classify(name) returns a Tag: the name's Side (Left, Right, or
//     Unsided), its Opposite (the same name with the marker swapped to the
//     other side), and its Bilateral form (the marker replaced by the "↔"
//     symbol, used as the display label of a merged pair).
//   - Mirror(name) is the common shorthand for the Opposite.
//   - Match(a, b) reports whether two names correspond across symmetry:
//     either the same unsided name, or mutually opposite sided names.
//
// Marker table
//
// A fixed, ordered rule set decides which marker a name carries. Earlier
// rules win, so a name matching several conventions resolves the same way
// every run:
//
//  1. A numeric suffix like ".001" is split off first and re-attached to
//     the mirrored name, so "Arm.L.001" mirrors to "Arm.R.001".
//  2. Single-letter suffix: the name ends with a separator ("_", ".", "-",
//     or a space) followed by "l", "L", "r", or "R". The letter's case is
//     preserved on mirroring.
//  3. Whole-word suffix "left"/"right". The case class is keyed by the
//     word's first two letters - ALL CAPS ("LEft", "RIGHT"), Capitalized
//     ("Left", "RighT"), or lowercase ("left", "rIGHT") - and the mirror
//     uses the canonical spelling of the same class ("LEFT", "Left",
//     "left", …).
//  4. Single-letter prefix: "L", "l", "R", or "r" followed by a separator.
//  5. Whole-word prefix "left"/"right", with the same three case classes.
//
// Suffix rules outrank prefix rules: a name that is side-tagged at both
// ends, such as "L_Arm_R", classifies by its suffix.
//
// Determinism
//
//	Classify is pure. For every sided name n written with a canonical
//	marker, Mirror(Mirror(n)) == n. Non-canonical word spellings such as
//	"RIghtArm" mirror into the canonical form of their case class
//	("LEFTArm"), matching how the host's own symmetrize feature pairs such
//	names.
//
// Complexity: O(len(name)) per call.
package naming
