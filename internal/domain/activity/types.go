package activity

import "strings"

// Known catalog names. The catalog itself lives in storage; these are the
// names the studio seeds and the booking form offers.
const (
	PotteryMaking      = "Pottery Making"
	CeramicCrafting    = "Ceramic Crafting"
	ArtAndPainting     = "Art & Painting"
	CreativeFoodCenter = "Creative Food Center"
	MixedActivities    = "Mixed Activities"
	Bharatanatyam      = "Bharatanatyam"
	ActingStudio       = "Acting Studio"
)

const (
	DefaultDurationMinutes = 60
	DefaultMaxCapacity     = 8
)

// NormalizeName trims and collapses inner whitespace. Matching against the
// catalog is case-insensitive on the normalized form; partial names never match.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// SameName reports whether two names refer to the same catalog entry.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// ChannelKey is the realtime channel an activity's slot updates go to.
func ChannelKey(name string) string {
	return strings.ToLower(NormalizeName(name))
}
