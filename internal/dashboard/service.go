package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPartnerNotFound is returned for lookups against unknown partner IDs.
var ErrPartnerNotFound = fmt.Errorf("partner not found")

// Service provides the partner-management analytics backing the dashboard
// views. All data comes from the static dataset; there is no persistence.
type Service struct {
	data   *Dataset
	logger *zap.Logger
}

// NewService creates a dashboard service over the given dataset.
func NewService(data *Dataset, logger *zap.Logger) *Service {
	return &Service{data: data, logger: logger}
}

// Metrics aggregates the headline numbers. Revenue, customer, and usage
// totals are summed over top-level partners only (distributors and direct
// MSSPs); downstream SI and managed-MSSP figures already roll up into their
// distributor.
func (s *Service) Metrics() Metrics {
	var m Metrics
	var growthSum float64
	var topLevel int

	for _, p := range s.data.Partners {
		switch p.Type {
		case PartnerDistributor:
			m.TotalDistributors++
		case PartnerDirectMSSP:
			m.TotalDirectMSSPs++
		case PartnerSI:
			m.TotalSIPartners++
		case PartnerManagedMSSP:
			m.TotalManagedMSSPs++
		}

		if p.Type == PartnerDistributor || p.Type == PartnerDirectMSSP {
			m.TotalCustomers += p.TotalCustomers
			m.TotalRevenue += p.TotalRevenue
			m.TotalAppSecUsage += p.AppSecUsage.Total
			m.TotalZTNASeats += p.ZTNAUsage.Total
			m.TotalEmailInboxes += p.EmailUsage.Total
			growthSum += p.MonthlyGrowth
			topLevel++
		}
	}

	if topLevel > 0 {
		m.MonthlyGrowthRate = round1(growthSum / float64(topLevel))
	}
	if n := len(s.data.RevenueHistory); n > 0 {
		m.ChurnRate = s.data.RevenueHistory[n-1].ChurnRate
	}

	return m
}

// PartnerFilter narrows partner listings. Zero values match everything.
type PartnerFilter struct {
	Region Region
	Type   PartnerType
	Status PartnerStatus
}

// Partners returns the partners matching the filter, in dataset order.
func (s *Service) Partners(filter PartnerFilter) []Partner {
	result := make([]Partner, 0, len(s.data.Partners))
	for _, p := range s.data.Partners {
		if filter.Region != "" && p.Region != filter.Region {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		result = append(result, p)
	}
	return result
}

// PartnerByID looks up a single partner.
func (s *Service) PartnerByID(id string) (*Partner, error) {
	for i := range s.data.Partners {
		if s.data.Partners[i].ID == id {
			return &s.data.Partners[i], nil
		}
	}
	return nil, ErrPartnerNotFound
}

// Customers returns end-customer accounts, optionally limited to one parent
// partner name.
func (s *Service) Customers(parentPartner string) []CustomerAccount {
	if parentPartner == "" {
		return s.data.Customers
	}
	var result []CustomerAccount
	for _, c := range s.data.Customers {
		if c.ParentPartner == parentPartner {
			result = append(result, c)
		}
	}
	return result
}

// RevenueHistory returns the monthly revenue series.
func (s *Service) RevenueHistory() []RevenueData {
	return s.data.RevenueHistory
}

// Industries returns the customer industry distribution.
func (s *Service) Industries() []IndustrySegment {
	return s.data.Industries
}

// ServiceDistributions returns the usage split per service family.
func (s *Service) ServiceDistributions() []ServiceDistribution {
	return s.data.ServiceDistributions
}

// CommercialReport prices one partner's usage at its contracted tier and
// sets it against booked revenue.
func (s *Service) CommercialReport(partnerID, month string) (*CommercialReport, error) {
	partner, err := s.PartnerByID(partnerID)
	if err != nil {
		return nil, err
	}
	report := buildCommercialReport(partner, month)
	return &report, nil
}

// CommercialReports builds the monthly commercial rollup for every partner.
func (s *Service) CommercialReports(month string) []CommercialReport {
	reports := make([]CommercialReport, 0, len(s.data.Partners))
	for i := range s.data.Partners {
		reports = append(reports, buildCommercialReport(&s.data.Partners[i], month))
	}
	return reports
}

func buildCommercialReport(p *Partner, month string) CommercialReport {
	cost := p.AppSecUsage.Total*p.Pricing.AppSecRate +
		float64(p.ZTNAUsage.Total)*p.Pricing.ZTNARate +
		float64(p.EmailUsage.Total)*p.Pricing.EmailRate

	margin := 0.0
	if p.TotalRevenue > 0 {
		margin = round1((p.TotalRevenue - cost) / p.TotalRevenue * 100)
	}

	return CommercialReport{
		PartnerID:        p.ID,
		PartnerName:      p.Name,
		PartnerType:      p.Type,
		Region:           p.Region,
		ReportMonth:      month,
		AppSecUsage:      p.AppSecUsage,
		ZTNAUsage:        p.ZTNAUsage,
		EmailUsage:       p.EmailUsage,
		Pricing:          p.Pricing,
		TotalCost:        round2(cost),
		TotalRevenue:     p.TotalRevenue,
		Margin:           margin,
		PriceListApplied: p.Pricing.PriceListVersion,
	}
}

// EvaluateAlerts walks every partner's usage against its contracted capacity
// and flags consumption above the warning and critical ratios.
func (s *Service) EvaluateAlerts(warning, critical float64) []UsageAlert {
	now := time.Now().UTC().Format(time.RFC3339)
	var alerts []UsageAlert

	for _, p := range s.data.Partners {
		checks := []struct {
			kind     string
			usage    float64
			capacity float64
		}{
			{"appsec", p.AppSecUsage.Total, p.Capacity.AppSecTB},
			{"ztna", float64(p.ZTNAUsage.Total), float64(p.Capacity.ZTNASeats)},
			{"email", float64(p.EmailUsage.Total), float64(p.Capacity.EmailInboxes)},
		}

		for _, check := range checks {
			if check.capacity <= 0 {
				continue
			}
			ratio := check.usage / check.capacity
			if ratio < warning {
				continue
			}

			level := AlertWarning
			threshold := warning
			if ratio >= critical {
				level = AlertCritical
				threshold = critical
			}

			alerts = append(alerts, UsageAlert{
				ID:           uuid.New().String(),
				PartnerID:    p.ID,
				PartnerName:  p.Name,
				Type:         check.kind,
				Threshold:    check.capacity * threshold,
				CurrentUsage: check.usage,
				Percentage:   round1(ratio * 100),
				AlertLevel:   level,
				CreatedAt:    now,
			})
		}
	}

	return alerts
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
