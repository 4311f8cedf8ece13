package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func componentMap(values []cloudflare.ComponentValue) map[string]int {
	m := make(map[string]int, len(values))
	for _, v := range values {
		m[v.Name] = v.Value
	}
	return m
}

func TestZeroTrustComponentValuesBundledTiers(t *testing.T) {
	tests := []struct {
		plan                  ZeroTrustPlan
		browserIso, casb, dlp int
	}{
		{PlanEssential, 0, 0, 0},
		{PlanEssentialPlus, 0, 0, 0},
		{PlanAdvanced, 0, 1, 1},
		{PlanAdvancedPlus, 0, 1, 1},
		{PlanPremier, 0, 1, 1},
		{PlanPremierPlus, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			values := ZeroTrustComponentValues(&Input{ZeroTrustPlan: tt.plan, ZeroTrustSeats: 50})
			m := componentMap(values)
			assert.Equal(t, 50, m["users"])
			assert.Equal(t, tt.browserIso, m["browser_isolation_adv"])
			assert.Equal(t, tt.casb, m["casb"])
			assert.Equal(t, tt.dlp, m["dlp"])
		})
	}
}

func TestZeroTrustComponentValuesDefaultSeats(t *testing.T) {
	values := ZeroTrustComponentValues(&Input{ZeroTrustPlan: PlanEssential})
	assert.Equal(t, 10, componentMap(values)["users"])
}

func TestZeroTrustComponentValuesOrderIsStable(t *testing.T) {
	values := ZeroTrustComponentValues(&Input{ZeroTrustPlan: PlanAdvanced, ZeroTrustSeats: 20})
	require.Len(t, values, 4)
	assert.Equal(t, "users", values[0].Name)
	assert.Equal(t, "browser_isolation_adv", values[1].Name)
	assert.Equal(t, "casb", values[2].Name)
	assert.Equal(t, "dlp", values[3].Name)
}

func TestZeroTrustComponentValuesPremierBrowserIsolationAddon(t *testing.T) {
	values := ZeroTrustComponentValues(&Input{
		ZeroTrustPlan:  PlanPremier,
		ZeroTrustSeats: 100,
		AddOns:         &AddOns{BrowserIsolation: intPtr(40)},
	})
	m := componentMap(values)
	assert.Equal(t, 40, m["browser_isolation_adv"])
	assert.Equal(t, 1, m["casb"])
	assert.Equal(t, 1, m["dlp"])
}

func TestZeroTrustComponentValuesAddonOverridesOnBundle(t *testing.T) {
	// Explicit add-ons replace tier defaults, including disabling what the
	// tier enables.
	values := ZeroTrustComponentValues(&Input{
		ZeroTrustPlan:  PlanAdvanced,
		ZeroTrustSeats: 30,
		AddOns: &AddOns{
			BrowserIsolation: intPtr(15),
			CASB:             boolPtr(false),
			DLP:              boolPtr(true),
		},
	})
	m := componentMap(values)
	assert.Equal(t, 15, m["browser_isolation_adv"])
	assert.Equal(t, 0, m["casb"])
	assert.Equal(t, 1, m["dlp"])
}

func TestZeroTrustComponentValuesAlaCarteDerivation(t *testing.T) {
	values := ZeroTrustComponentValues(&Input{
		ZeroTrustPlan:   PlanAlaCarte,
		ZeroTrustSeats:  60,
		AlaCarteService: []AlaCarteService{ServiceBrowserIsolation, ServiceDLP},
	})
	m := componentMap(values)
	assert.Equal(t, 60, m["users"])
	assert.Equal(t, 60, m["browser_isolation_adv"])
	assert.Equal(t, 0, m["casb"])
	assert.Equal(t, 1, m["dlp"])
}

func TestZeroTrustComponentValuesAddonsIgnoredForAlaCarte(t *testing.T) {
	values := ZeroTrustComponentValues(&Input{
		ZeroTrustPlan:   PlanAlaCarte,
		ZeroTrustSeats:  20,
		AlaCarteService: []AlaCarteService{ServiceCASB},
		AddOns: &AddOns{
			BrowserIsolation: intPtr(5),
			CASB:             boolPtr(false),
		},
	})
	m := componentMap(values)
	assert.Equal(t, 0, m["browser_isolation_adv"])
	assert.Equal(t, 1, m["casb"])
}

func TestZeroTrustComponentValuesAccessOnlyAlaCarte(t *testing.T) {
	// Access and Gateway carry no optional component of their own; their
	// selection is billed through the seat count alone.
	values := ZeroTrustComponentValues(&Input{
		ZeroTrustPlan:   PlanAlaCarte,
		ZeroTrustSeats:  35,
		AlaCarteService: []AlaCarteService{ServiceAccess},
	})
	m := componentMap(values)
	assert.Equal(t, 35, m["users"])
	assert.Equal(t, 0, m["browser_isolation_adv"])
	assert.Equal(t, 0, m["casb"])
	assert.Equal(t, 0, m["dlp"])
}
