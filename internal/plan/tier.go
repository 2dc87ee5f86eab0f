// Package plan holds the subscription tier catalog: which resource
// ceilings apply to a wedding at a given tier.
package plan

import "strings"

// Tier represents a wedding's subscription level.
type Tier string

const (
	TierFree     Tier = "free"
	TierPremium  Tier = "premium"
	TierUltimate Tier = "ultimate"
	TierLifetime Tier = "lifetime"
)

// NormalizeTier maps a raw tier string onto the closed tier set.
// Unknown values fall back to the free tier so a corrupt or stale tier
// column can never unlock paid ceilings.
func NormalizeTier(raw string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierPremium:
		return TierPremium
	case TierUltimate:
		return TierUltimate
	case TierLifetime:
		return TierLifetime
	default:
		return TierFree
	}
}

// Paid reports whether the tier is a paying tier.
func (t Tier) Paid() bool {
	switch t {
	case TierPremium, TierUltimate, TierLifetime:
		return true
	default:
		return false
	}
}
