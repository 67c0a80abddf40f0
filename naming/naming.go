package naming

import "regexp"

// MirrorSymbol replaces the side marker in the Bilateral form of a sided
// name, and joins the two halves of a merged pair in display labels.
const MirrorSymbol = "↔"

// Side classifies which half of a bilateral pair a name belongs to.
type Side uint8

const (
	// Unsided means the name carries no recognized side marker.
	Unsided Side = iota

	// Left marks a left-sided name, e.g. "Arm.L" or "left_Foot".
	Left

	// Right marks a right-sided name, e.g. "Arm.R" or "RIGHT_Foot".
	Right
)

// String returns "left", "right", or "unsided".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unsided"
	}
}

// Tag is the full classification of a name.
type Tag struct {
	// Side is Left, Right, or Unsided.
	Side Side

	// Opposite is the name with its side marker swapped to the other
	// side. Empty when Side is Unsided.
	Opposite string

	// Bilateral is the name with its side marker replaced by
	// MirrorSymbol. Empty when Side is Unsided.
	Bilateral string
}

// numericSuffix matches trailing duplicate counters like ".001".
var numericSuffix = regexp.MustCompile(`\.\d+$`)

// Whole-word side markers compare the case of only the first two letters;
// the remaining letters match either case. "RIghT" therefore belongs to
// the ALL CAPS class of "RIGHT", while "RighT" belongs to "Right".
var (
	rightSuffixAllCaps     = regexp.MustCompile(`RI[gG][hH][tT]$`)
	rightSuffixCapitalized = regexp.MustCompile(`Ri[gG][hH][tT]$`)
	rightSuffixLowercase   = regexp.MustCompile(`r[iI][gG][hH][tT]$`)

	leftSuffixAllCaps     = regexp.MustCompile(`LE[fF][tT]$`)
	leftSuffixCapitalized = regexp.MustCompile(`Le[fF][tT]$`)
	leftSuffixLowercase   = regexp.MustCompile(`l[eE][fF][tT]$`)

	rightPrefixAllCaps     = regexp.MustCompile(`^RI[gG][hH][tT]`)
	rightPrefixCapitalized = regexp.MustCompile(`^Ri[gG][hH][tT]`)
	rightPrefixLowercase   = regexp.MustCompile(`^r[iI][gG][hH][tT]`)

	leftPrefixAllCaps     = regexp.MustCompile(`^LE[fF][tT]`)
	leftPrefixCapitalized = regexp.MustCompile(`^Le[fF][tT]`)
	leftPrefixLowercase   = regexp.MustCompile(`^l[eE][fF][tT]`)
)

const (
	rightWordLen = len("right")
	leftWordLen  = len("left")
)

// Classify parses the side marker of name, if any. Pure and deterministic;
// the marker table and its priority order are documented in the package
// comment.
//
// Complexity: O(len(name))
func Classify(name string) Tag {
	suffix := numericSuffix.FindString(name)
	stem := name[:len(name)-len(suffix)]

	side, opposite, bilateral := classifyStem(stem)
	if side == Unsided {
		return Tag{Side: Unsided}
	}

	return Tag{
		Side:      side,
		Opposite:  opposite + suffix,
		Bilateral: bilateral + suffix,
	}
}

// Mirror returns the opposite-sided version of name. The second result is
// false when name is unsided and has no mirror.
func Mirror(name string) (string, bool) {
	t := Classify(name)
	if t.Side == Unsided {
		return "", false
	}

	return t.Opposite, true
}

// Match reports whether a and b correspond across symmetry: either they
// are the same unsided name, or they are mutually opposite sided names
// (each is the other's Mirror).
func Match(a, b string) bool {
	ta := Classify(a)
	if a == b {
		// Equal names match only when they carry no side marker;
		// "Arm.L" never pairs with itself.
		return ta.Side == Unsided
	}

	tb := Classify(b)
	if ta.Side == Unsided || tb.Side == Unsided {
		return false
	}
	if ta.Side == tb.Side {
		return false
	}

	// The pairing must hold in both directions: names like "RIghtArm"
	// and "LEFTArm" mirror asymmetrically and must not match.
	return a == tb.Opposite && ta.Opposite == b
}

// isSeparator reports whether b is one of the marker separators.
func isSeparator(b byte) bool {
	return b == '_' || b == '.' || b == '-' || b == ' '
}

// classifyStem applies the marker rules to a name already stripped of any
// numeric suffix. It returns the side plus the opposite and bilateral
// stems, or (Unsided, "", "") when no rule matches.
func classifyStem(stem string) (Side, string, string) {
	// Rule 2: single-letter suffix, separator + l/L/r/R.
	if n := len(stem); n >= 2 && isSeparator(stem[n-2]) {
		root := stem[:n-1]
		switch stem[n-1] {
		case 'r':
			return Right, root + "l", root + MirrorSymbol
		case 'R':
			return Right, root + "L", root + MirrorSymbol
		case 'l':
			return Left, root + "r", root + MirrorSymbol
		case 'L':
			return Left, root + "R", root + MirrorSymbol
		}
	}

	// Rule 3: whole-word suffix, three case classes per side.
	switch {
	case rightSuffixAllCaps.MatchString(stem):
		root := stem[:len(stem)-rightWordLen]
		return Right, root + "LEFT", root + MirrorSymbol
	case rightSuffixCapitalized.MatchString(stem):
		root := stem[:len(stem)-rightWordLen]
		return Right, root + "Left", root + MirrorSymbol
	case rightSuffixLowercase.MatchString(stem):
		root := stem[:len(stem)-rightWordLen]
		return Right, root + "left", root + MirrorSymbol
	case leftSuffixAllCaps.MatchString(stem):
		root := stem[:len(stem)-leftWordLen]
		return Left, root + "RIGHT", root + MirrorSymbol
	case leftSuffixCapitalized.MatchString(stem):
		root := stem[:len(stem)-leftWordLen]
		return Left, root + "Right", root + MirrorSymbol
	case leftSuffixLowercase.MatchString(stem):
		root := stem[:len(stem)-leftWordLen]
		return Left, root + "right", root + MirrorSymbol
	}

	// Rule 4: single-letter prefix, L/l/R/r + separator. The separator
	// stays with the root, so "R_Arm" mirrors to "L_Arm".
	if len(stem) >= 2 && isSeparator(stem[1]) {
		rest := stem[1:]
		switch stem[0] {
		case 'R':
			return Right, "L" + rest, MirrorSymbol + rest
		case 'r':
			return Right, "l" + rest, MirrorSymbol + rest
		case 'L':
			return Left, "R" + rest, MirrorSymbol + rest
		case 'l':
			return Left, "r" + rest, MirrorSymbol + rest
		}
	}

	// Rule 5: whole-word prefix.
	switch {
	case rightPrefixAllCaps.MatchString(stem):
		rest := stem[rightWordLen:]
		return Right, "LEFT" + rest, MirrorSymbol + rest
	case rightPrefixCapitalized.MatchString(stem):
		rest := stem[rightWordLen:]
		return Right, "Left" + rest, MirrorSymbol + rest
	case rightPrefixLowercase.MatchString(stem):
		rest := stem[rightWordLen:]
		return Right, "left" + rest, MirrorSymbol + rest
	case leftPrefixAllCaps.MatchString(stem):
		rest := stem[leftWordLen:]
		return Left, "RIGHT" + rest, MirrorSymbol + rest
	case leftPrefixCapitalized.MatchString(stem):
		rest := stem[leftWordLen:]
		return Left, "Right" + rest, MirrorSymbol + rest
	case leftPrefixLowercase.MatchString(stem):
		rest := stem[leftWordLen:]
		return Left, "right" + rest, MirrorSymbol + rest
	}

	return Unsided, "", ""
}
