package plan

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog_FreeCeilings(t *testing.T) {
	catalog := DefaultCatalog()

	expected := map[ResourceKind]Ceiling{
		ResourceTasks:         30,
		ResourceBudgetLines:   15,
		ResourceVendors:       10,
		ResourceGuests:        50,
		ResourceVenues:        3,
		ResourceSeatingTables: 0,
	}
	for kind, want := range expected {
		got, err := catalog.Ceiling(TierFree, kind)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "kind %s", kind)
	}
}

func TestDefaultCatalog_PaidTiersUnlimited(t *testing.T) {
	catalog := DefaultCatalog()

	for _, tier := range []Tier{TierPremium, TierUltimate, TierLifetime} {
		for _, kind := range ResourceKinds() {
			got, err := catalog.Ceiling(tier, kind)
			assert.NoError(t, err)
			assert.True(t, got.IsUnlimited(), "tier %s kind %s", tier, kind)
		}
	}
}

func TestCatalog_UnknownTierFallsBackToFree(t *testing.T) {
	catalog := DefaultCatalog()

	got, err := catalog.Ceiling(Tier("platinum"), ResourceGuests)
	assert.NoError(t, err)
	assert.Equal(t, Ceiling(50), got)

	got, err = catalog.Ceiling(Tier(""), ResourceSeatingTables)
	assert.NoError(t, err)
	assert.Equal(t, Ceiling(0), got)
}

func TestCatalog_UnknownKindFailsLoudly(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.Ceiling(TierFree, ResourceKind("honeymoons"))
	assert.ErrorIs(t, err, ErrUnknownResourceKind)
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, TierPremium, NormalizeTier("premium"))
	assert.Equal(t, TierPremium, NormalizeTier(" Premium "))
	assert.Equal(t, TierFree, NormalizeTier("gold"))
	assert.Equal(t, TierFree, NormalizeTier(""))
}

func TestParseResourceKind(t *testing.T) {
	kind, err := ParseResourceKind(" Guests ")
	assert.NoError(t, err)
	assert.Equal(t, ResourceGuests, kind)

	_, err = ParseResourceKind("cakes")
	assert.ErrorIs(t, err, ErrUnknownResourceKind)
}

func TestCatalogFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("plans", []map[string]any{
		{
			"tier": "free",
			"ceilings": map[string]int{
				"guests": 100,
				"venues": 5,
			},
		},
		{
			"tier": "premium",
			"ceilings": map[string]int{
				"seating_tables": 20,
			},
		},
	})

	catalog, err := catalogFromViper(v)
	assert.NoError(t, err)

	got, _ := catalog.Ceiling(TierFree, ResourceGuests)
	assert.Equal(t, Ceiling(100), got)
	got, _ = catalog.Ceiling(TierFree, ResourceVenues)
	assert.Equal(t, Ceiling(5), got)
	// untouched kinds keep defaults
	got, _ = catalog.Ceiling(TierFree, ResourceTasks)
	assert.Equal(t, Ceiling(30), got)
	got, _ = catalog.Ceiling(TierPremium, ResourceSeatingTables)
	assert.Equal(t, Ceiling(20), got)
	// other tiers unaffected
	got, _ = catalog.Ceiling(TierUltimate, ResourceSeatingTables)
	assert.True(t, got.IsUnlimited())
}

func TestCatalogFromViper_RejectsBadValues(t *testing.T) {
	v := viper.New()
	v.Set("plans", []map[string]any{
		{"tier": "free", "ceilings": map[string]int{"guests": -5}},
	})
	_, err := catalogFromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("plans", []map[string]any{
		{"tier": "free", "ceilings": map[string]int{"cakes": 10}},
	})
	_, err = catalogFromViper(v)
	assert.ErrorIs(t, err, ErrUnknownResourceKind)
}
