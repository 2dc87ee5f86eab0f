package plan

// Unlimited is the ceiling sentinel for resources without a numeric cap.
const Unlimited = -1

// Ceiling is a per-resource row cap. Zero means the resource is fully
// gated at the tier, Unlimited means no cap at all.
type Ceiling int

// IsUnlimited reports whether the ceiling carries no numeric cap.
func (c Ceiling) IsUnlimited() bool { return c == Unlimited }

// Catalog maps tiers to per-resource ceilings.
type Catalog struct {
	ceilings map[Tier]map[ResourceKind]Ceiling
}

// DefaultCatalog returns the built-in ceilings. Free weddings get small
// finite caps on every collection and no seating tables at all; every
// paid tier is unlimited across the board.
func DefaultCatalog() *Catalog {
	free := map[ResourceKind]Ceiling{
		ResourceTasks:         30,
		ResourceBudgetLines:   15,
		ResourceVendors:       10,
		ResourceGuests:        50,
		ResourceVenues:        3,
		ResourceSeatingTables: 0,
	}

	unlimited := func() map[ResourceKind]Ceiling {
		out := make(map[ResourceKind]Ceiling, len(ResourceKinds()))
		for _, kind := range ResourceKinds() {
			out[kind] = Unlimited
		}
		return out
	}

	return &Catalog{
		ceilings: map[Tier]map[ResourceKind]Ceiling{
			TierFree:     free,
			TierPremium:  unlimited(),
			TierUltimate: unlimited(),
			TierLifetime: unlimited(),
		},
	}
}

// Ceiling resolves the cap for a tier/resource pair. The tier is
// normalized first, so unknown tiers resolve to the free ceilings.
func (c *Catalog) Ceiling(tier Tier, kind ResourceKind) (Ceiling, error) {
	if _, err := ParseResourceKind(string(kind)); err != nil {
		return 0, err
	}

	byKind, ok := c.ceilings[NormalizeTier(string(tier))]
	if !ok {
		byKind = c.ceilings[TierFree]
	}
	return byKind[kind], nil
}
