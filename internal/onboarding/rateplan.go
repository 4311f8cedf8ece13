package onboarding

import "cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"

// Billable component names on the Zero Trust rate plan.
const (
	componentUsers            = "users"
	componentBrowserIsolation = "browser_isolation_adv"
	componentCASB             = "casb"
	componentDLP              = "dlp"
)

// defaultZeroTrustSeats is applied when the caller leaves the seat count
// unset.
const defaultZeroTrustSeats = 10

// ZeroTrustComponentValues maps the requested plan selection to the ordered
// list of billable components posted with the Zero Trust subscription.
//
// The order of operations is load-bearing: the per-tier defaults are computed
// first, then explicit add-on overrides replace them — but only for bundled
// plans. À-la-carte selections derive these values directly from the chosen
// service set and are never overridden.
func ZeroTrustComponentValues(in *Input) []cloudflare.ComponentValue {
	seats := in.ZeroTrustSeats
	if seats == 0 {
		seats = defaultZeroTrustSeats
	}

	var browserIsolation, casb, dlp int

	switch in.ZeroTrustPlan {
	case PlanEssential, PlanEssentialPlus:
		browserIsolation, casb, dlp = 0, 0, 0

	case PlanAdvanced, PlanAdvancedPlus:
		browserIsolation, casb, dlp = 0, 1, 1

	case PlanPremier, PlanPremierPlus:
		casb, dlp = 1, 1
		if in.AddOns != nil && in.AddOns.BrowserIsolation != nil {
			browserIsolation = *in.AddOns.BrowserIsolation
		}

	case PlanAlaCarte:
		if in.HasAlaCarteService(ServiceBrowserIsolation) {
			browserIsolation = seats
		}
		if in.HasAlaCarteService(ServiceCASB) {
			casb = 1
		}
		if in.HasAlaCarteService(ServiceDLP) {
			dlp = 1
		}

	default:
		// none or unrecognized: seats only, no optional services
	}

	// Add-on override layer, bundled plans only.
	if in.ZeroTrustPlan.IsBundle() && in.AddOns != nil {
		if in.AddOns.BrowserIsolation != nil {
			browserIsolation = *in.AddOns.BrowserIsolation
		}
		if in.AddOns.CASB != nil {
			casb = boolComponent(*in.AddOns.CASB)
		}
		if in.AddOns.DLP != nil {
			dlp = boolComponent(*in.AddOns.DLP)
		}
	}

	return []cloudflare.ComponentValue{
		{Name: componentUsers, Value: seats},
		{Name: componentBrowserIsolation, Value: browserIsolation},
		{Name: componentCASB, Value: casb},
		{Name: componentDLP, Value: dlp},
	}
}

func boolComponent(enabled bool) int {
	if enabled {
		return 1
	}
	return 0
}
