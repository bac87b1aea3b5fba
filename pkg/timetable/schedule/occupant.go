package schedule

import "strings"

// OccupantDelimiter separates the subject prefix from the teacher name.
const OccupantDelimiter = "-"

// Occupant is a parsed occupant code.
type Occupant struct {
	// Code is the normalized code the occupant was parsed from.
	Code string
	// Prefix is the subject or role, valid when HasPrefix is set.
	Prefix    string
	HasPrefix bool
	// Base is the teacher identity.
	Base string
}

// ParseOccupant splits code on the first delimiter into prefix and base name.
// A code without a delimiter is all name.
func ParseOccupant(code string) Occupant {
	code = normalize(code)
	prefix, base, found := strings.Cut(code, OccupantDelimiter)
	if !found {
		return Occupant{Code: code, Base: code}
	}
	return Occupant{
		Code:      code,
		Prefix:    strings.TrimSpace(prefix),
		HasPrefix: true,
		Base:      strings.TrimSpace(base),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
