package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewDataset(), zap.NewNop())
}

func TestMetricsAggregatesTopLevelPartners(t *testing.T) {
	m := newTestService(t).Metrics()

	assert.Equal(t, 2, m.TotalDistributors)
	assert.Equal(t, 2, m.TotalDirectMSSPs)
	assert.Equal(t, 1, m.TotalSIPartners)
	assert.Equal(t, 2, m.TotalManagedMSSPs)

	// Downstream SI and managed-MSSP figures roll up into their distributor
	// and are excluded from the totals.
	assert.Equal(t, 1465, m.TotalCustomers)
	assert.InDelta(t, 1177000, m.TotalRevenue, 0.01)
	assert.InDelta(t, 1964.8, m.TotalAppSecUsage, 0.01)
	assert.Equal(t, 35845, m.TotalZTNASeats)
	assert.Equal(t, 80150, m.TotalEmailInboxes)

	assert.InDelta(t, 18.3, m.MonthlyGrowthRate, 0.01)
	assert.InDelta(t, 1.7, m.ChurnRate, 0.01)
}

func TestPartnersFilter(t *testing.T) {
	svc := newTestService(t)

	all := svc.Partners(PartnerFilter{})
	assert.Len(t, all, 7)

	distributors := svc.Partners(PartnerFilter{Type: PartnerDistributor})
	require.Len(t, distributors, 2)
	assert.Equal(t, "Cloudhop", distributors[0].Name)
	assert.Equal(t, "Synopsis", distributors[1].Name)

	emea := svc.Partners(PartnerFilter{Region: RegionEMEA, Status: StatusActive})
	assert.Len(t, emea, 7)

	none := svc.Partners(PartnerFilter{Region: RegionAPAC})
	assert.Empty(t, none)
}

func TestPartnerByID(t *testing.T) {
	svc := newTestService(t)

	partner, err := svc.PartnerByID("mssp-001")
	require.NoError(t, err)
	assert.Equal(t, "Safaricom", partner.Name)
	assert.Equal(t, "dist-001", partner.ParentDistributor)

	_, err = svc.PartnerByID("nope")
	assert.ErrorIs(t, err, ErrPartnerNotFound)
}

func TestCustomersByParentPartner(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.Customers(""), 2)

	orange := svc.Customers("Orange")
	require.Len(t, orange, 1)
	assert.Equal(t, "TechCorp France", orange[0].Name)

	assert.Empty(t, svc.Customers("Unknown"))
}

func TestCommercialReportPricesUsageAtTier(t *testing.T) {
	svc := newTestService(t)

	report, err := svc.CommercialReport("mssp-001", "2025-06")
	require.NoError(t, err)

	// Standard tier: 128.4 TB * 120 + 2257 seats * 8 + 5150 inboxes * 2.5.
	assert.InDelta(t, 46339, report.TotalCost, 0.01)
	assert.InDelta(t, 88000, report.TotalRevenue, 0.01)
	assert.InDelta(t, 47.3, report.Margin, 0.01)
	assert.Equal(t, "2025-06", report.ReportMonth)
	assert.Equal(t, "v3.2", report.PriceListApplied)

	_, err = svc.CommercialReport("nope", "2025-06")
	assert.ErrorIs(t, err, ErrPartnerNotFound)
}

func TestCommercialReportsCoverAllPartners(t *testing.T) {
	reports := newTestService(t).CommercialReports("2025-06")
	assert.Len(t, reports, 7)
	for _, report := range reports {
		assert.Equal(t, "2025-06", report.ReportMonth)
		assert.Positive(t, report.TotalCost)
	}
}

func TestEvaluateAlerts(t *testing.T) {
	alerts := newTestService(t).EvaluateAlerts(0.8, 0.95)
	require.Len(t, alerts, 3)

	assert.Equal(t, "dist-001", alerts[0].PartnerID)
	assert.Equal(t, "appsec", alerts[0].Type)
	assert.Equal(t, AlertWarning, alerts[0].AlertLevel)
	assert.InDelta(t, 92.0, alerts[0].Percentage, 0.01)
	assert.InDelta(t, 520, alerts[0].Threshold, 0.01)

	assert.Equal(t, "mssp-001", alerts[1].PartnerID)
	assert.Equal(t, "ztna", alerts[1].Type)
	assert.Equal(t, AlertCritical, alerts[1].AlertLevel)
	assert.InDelta(t, 98.1, alerts[1].Percentage, 0.01)

	assert.Equal(t, "mssp-005", alerts[2].PartnerID)
	assert.Equal(t, "appsec", alerts[2].Type)
	assert.Equal(t, AlertWarning, alerts[2].AlertLevel)
	assert.InDelta(t, 82.2, alerts[2].Percentage, 0.01)
}

func TestEvaluateAlertsNoneBelowThreshold(t *testing.T) {
	alerts := newTestService(t).EvaluateAlerts(0.999, 1.0)
	assert.Empty(t, alerts)
}
