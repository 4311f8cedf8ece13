package dashboard

// Dataset is the static partner-management dataset backing the dashboard.
// It mirrors the demo dataset the portal frontend ships with; nothing here
// is persisted.
type Dataset struct {
	PricingTiers         map[string]PricingTier
	Partners             []Partner
	Customers            []CustomerAccount
	RevenueHistory       []RevenueData
	Industries           []IndustrySegment
	ServiceDistributions []ServiceDistribution
}

// NewDataset builds the demo dataset.
func NewDataset() *Dataset {
	tiers := map[string]PricingTier{
		"standard": {
			AppSecRate:       120,
			ZTNARate:         8,
			EmailRate:        2.5,
			Currency:         "USD",
			EffectiveDate:    "2025-01-01",
			PriceListVersion: "v3.2",
		},
		"premium": {
			AppSecRate:       100,
			ZTNARate:         7,
			EmailRate:        2.2,
			Currency:         "USD",
			EffectiveDate:    "2025-01-01",
			PriceListVersion: "v3.2",
		},
		"enterprise": {
			AppSecRate:       85,
			ZTNARate:         6,
			EmailRate:        2.0,
			Currency:         "USD",
			EffectiveDate:    "2025-01-01",
			PriceListVersion: "v3.2",
		},
	}

	partners := []Partner{
		{
			ID:                "dist-001",
			Name:              "Cloudhop",
			Type:              PartnerDistributor,
			Region:            RegionEMEA,
			Country:           []string{"United Kingdom", "Ireland"},
			Tier:              2,
			Status:            StatusActive,
			MonthlyGrowth:     22,
			RegistrationDate:  "2023-06-15",
			ContactEmail:      "partners@cloudhop.com",
			AccountManager:    "Sarah Johnson",
			ManagedSIPartners: []string{"si-001", "si-002"},
			ManagedMSSPs:      []string{"mssp-001", "mssp-002"},
			TotalPartners:     6,
			TotalCustomers:    520,
			TotalRevenue:      385000,
			AppSecUsage:       AppSecUsage{CDN: 210.5, WAF: 185.2, DDoSProtection: 125.8, LoadBalancing: 35.4, Spectrum: 22.6, Argo: 18.3, Total: 597.8},
			ZTNAUsage:         ZTNAUsage{Gateway: 3250, Access: 2180, DLP: 1290, CASB: 720, BrowserIsolation: 480, Essential: 1800, Advanced: 1200, Premier: 650, Total: 11570},
			EmailUsage:        EmailSecurityUsage{Area1: 18500, AdvancedThreatProtection: 7200, Total: 25700},
			Pricing:           tiers["premium"],
			Capacity:          ContractedCapacity{AppSecTB: 650, ZTNASeats: 16000, EmailInboxes: 36000},
		},
		{
			ID:               "dist-002",
			Name:             "Synopsis",
			Type:             PartnerDistributor,
			Region:           RegionEMEA,
			Country:          []string{"Germany", "Austria", "Switzerland", "Turkey", "UAE", "Saudi Arabia", "South Africa", "Kenya"},
			Tier:             2,
			Status:           StatusActive,
			MonthlyGrowth:    24,
			RegistrationDate: "2023-04-20",
			ContactEmail:     "partners@synopsis.de",
			AccountManager:   "Klaus Weber",
			ManagedMSSPs:     []string{"mssp-005", "mssp-006"},
			TotalPartners:    7,
			TotalCustomers:   620,
			TotalRevenue:     465000,
			AppSecUsage:      AppSecUsage{CDN: 286.8, WAF: 258.4, DDoSProtection: 168.2, LoadBalancing: 48.6, Spectrum: 30.2, Argo: 24.8, Total: 817.0},
			ZTNAUsage:        ZTNAUsage{Gateway: 4120, Access: 2760, DLP: 1640, CASB: 910, BrowserIsolation: 605, Essential: 2280, Advanced: 1520, Premier: 825, Total: 14660},
			EmailUsage:       EmailSecurityUsage{Area1: 23400, AdvancedThreatProtection: 9100, Total: 32500},
			Pricing:          tiers["premium"],
			Capacity:         ContractedCapacity{AppSecTB: 1200, ZTNASeats: 20000, EmailInboxes: 45000},
		},
		{
			ID:               "direct-001",
			Name:             "Orange",
			Type:             PartnerDirectMSSP,
			Region:           RegionEMEA,
			Country:          []string{"France", "Spain", "Poland"},
			Tier:             2,
			Status:           StatusActive,
			MonthlyGrowth:    15,
			RegistrationDate: "2023-01-15",
			ContactEmail:     "cybersecurity@orange.com",
			AccountManager:   "Philippe Martin",
			Customers:        []string{"cust-001", "cust-002"},
			TotalCustomers:   180,
			TotalRevenue:     185000,
			AppSecUsage:      AppSecUsage{CDN: 118.4, WAF: 95.6, DDoSProtection: 62.2, LoadBalancing: 17.2, Spectrum: 11.8, Argo: 9.2, Total: 314.4},
			ZTNAUsage:        ZTNAUsage{Gateway: 1540, Access: 1040, DLP: 570, CASB: 340, BrowserIsolation: 220, Essential: 850, Advanced: 570, Premier: 320, Total: 5450},
			EmailUsage:       EmailSecurityUsage{Area1: 8800, AdvancedThreatProtection: 3650, Total: 12450},
			Pricing:          tiers["premium"],
			Capacity:         ContractedCapacity{AppSecTB: 450, ZTNASeats: 8000, EmailInboxes: 18000},
		},
		{
			ID:               "direct-002",
			Name:             "Nanosek",
			Type:             PartnerDirectMSSP,
			Region:           RegionEMEA,
			Country:          []string{"United Kingdom"},
			Tier:             2,
			Status:           StatusActive,
			MonthlyGrowth:    12,
			RegistrationDate: "2023-02-10",
			ContactEmail:     "soc@nanosek.co.uk",
			AccountManager:   "Emma Clarke",
			Customers:        []string{"cust-003"},
			TotalCustomers:   145,
			TotalRevenue:     142000,
			AppSecUsage:      AppSecUsage{CDN: 88.6, WAF: 72.4, DDoSProtection: 46.8, LoadBalancing: 12.8, Spectrum: 8.4, Argo: 6.6, Total: 235.6},
			ZTNAUsage:        ZTNAUsage{Gateway: 1180, Access: 790, DLP: 435, CASB: 260, BrowserIsolation: 170, Essential: 650, Advanced: 435, Premier: 245, Total: 4165},
			EmailUsage:       EmailSecurityUsage{Area1: 6700, AdvancedThreatProtection: 2800, Total: 9500},
			Pricing:          tiers["standard"],
			Capacity:         ContractedCapacity{AppSecTB: 300, ZTNASeats: 6000, EmailInboxes: 14000},
		},
		{
			ID:                "si-001",
			Name:              "Copy Cat",
			Type:              PartnerSI,
			Region:            RegionEMEA,
			Country:           []string{"Kenya"},
			Tier:              3,
			Status:            StatusActive,
			MonthlyGrowth:     18,
			RegistrationDate:  "2024-01-08",
			ContactEmail:      "cloud@copycatgroup.com",
			AccountManager:    "Sarah Johnson",
			ParentDistributor: "dist-001",
			ManagedMSSPs:      []string{"mssp-001"},
			TotalCustomers:    65,
			TotalRevenue:      58000,
			AppSecUsage:       AppSecUsage{CDN: 32.4, WAF: 26.2, DDoSProtection: 17.0, LoadBalancing: 4.6, Spectrum: 3.1, Argo: 2.4, Total: 85.7},
			ZTNAUsage:         ZTNAUsage{Gateway: 420, Access: 280, DLP: 155, CASB: 92, BrowserIsolation: 60, Essential: 230, Advanced: 155, Premier: 85, Total: 1477},
			EmailUsage:        EmailSecurityUsage{Area1: 2400, AdvancedThreatProtection: 980, Total: 3380},
			Pricing:           tiers["standard"],
			Capacity:          ContractedCapacity{AppSecTB: 120, ZTNASeats: 2200, EmailInboxes: 5000},
		},
		{
			ID:                "mssp-001",
			Name:              "Safaricom",
			Type:              PartnerManagedMSSP,
			Region:            RegionEMEA,
			Country:           []string{"Kenya"},
			Tier:              3,
			Status:            StatusActive,
			MonthlyGrowth:     26,
			RegistrationDate:  "2024-01-22",
			ContactEmail:      "enterprise@safaricom.co.ke",
			AccountManager:    "Sarah Johnson",
			ParentDistributor: "dist-001",
			ParentSI:          "si-001",
			Customers:         []string{"cust-004"},
			TotalCustomers:    95,
			TotalRevenue:      88000,
			AppSecUsage:       AppSecUsage{CDN: 48.2, WAF: 39.6, DDoSProtection: 25.4, LoadBalancing: 7.0, Spectrum: 4.6, Argo: 3.6, Total: 128.4},
			ZTNAUsage:         ZTNAUsage{Gateway: 640, Access: 430, DLP: 235, CASB: 140, BrowserIsolation: 92, Essential: 355, Advanced: 235, Premier: 130, Total: 2257},
			EmailUsage:        EmailSecurityUsage{Area1: 3650, AdvancedThreatProtection: 1500, Total: 5150},
			Pricing:           tiers["standard"],
			Capacity:          ContractedCapacity{AppSecTB: 180, ZTNASeats: 2300, EmailInboxes: 7500},
		},
		{
			ID:                "mssp-005",
			Name:              "Koc SISTEM",
			Type:              PartnerManagedMSSP,
			Region:            RegionEMEA,
			Country:           []string{"Turkey"},
			Tier:              3,
			Status:            StatusActive,
			MonthlyGrowth:     20,
			RegistrationDate:  "2024-02-14",
			ContactEmail:      "cloud@kocsistem.com.tr",
			AccountManager:    "Klaus Weber",
			ParentDistributor: "dist-002",
			TotalCustomers:    120,
			TotalRevenue:      110000,
			AppSecUsage:       AppSecUsage{CDN: 61.8, WAF: 50.4, DDoSProtection: 32.6, LoadBalancing: 9.0, Spectrum: 5.9, Argo: 4.6, Total: 164.3},
			ZTNAUsage:         ZTNAUsage{Gateway: 820, Access: 550, DLP: 300, CASB: 180, BrowserIsolation: 118, Essential: 455, Advanced: 300, Premier: 165, Total: 2888},
			EmailUsage:        EmailSecurityUsage{Area1: 4650, AdvancedThreatProtection: 1920, Total: 6570},
			Pricing:           tiers["standard"],
			Capacity:          ContractedCapacity{AppSecTB: 200, ZTNASeats: 4200, EmailInboxes: 9500},
		},
	}

	customers := []CustomerAccount{
		{
			ID:                "cust-001",
			Name:              "TechCorp France",
			AccountID:         "ACC-TECH001",
			ParentPartner:     "Orange",
			ParentPartnerType: PartnerDirectMSSP,
			Region:            RegionEMEA,
			Country:           "France",
			Zones: []ZoneData{
				{ID: "zone-001", Domain: "techcorp.fr", Plan: "Enterprise", AppSecUsage: 12.5, MonthlyRequests: 45000000, BandwidthUsage: 2500},
				{ID: "zone-002", Domain: "api.techcorp.fr", Plan: "Business", AppSecUsage: 8.2, MonthlyRequests: 28000000, BandwidthUsage: 1800},
			},
			TotalZones:       2,
			MonthlySpend:     8500,
			RegistrationDate: "2023-04-15",
			Industry:         "Technology",
			Size:             "Enterprise",
			AppSecUsage:      AppSecUsage{CDN: 8.5, WAF: 6.8, DDoSProtection: 4.2, LoadBalancing: 1.0, Spectrum: 0.7, Argo: 0.5, Total: 21.7},
			ZTNAUsage:        ZTNAUsage{Gateway: 150, Access: 100, DLP: 55, CASB: 32, BrowserIsolation: 20, Essential: 75, Advanced: 50, Premier: 28, Total: 510},
			EmailUsage:       EmailSecurityUsage{Area1: 850, AdvancedThreatProtection: 350, Total: 1200},
		},
		{
			ID:                "cust-004",
			Name:              "Equity Bank Kenya",
			AccountID:         "ACC-EQTY004",
			ParentPartner:     "Safaricom",
			ParentPartnerType: PartnerManagedMSSP,
			Region:            RegionEMEA,
			Country:           "Kenya",
			Zones: []ZoneData{
				{ID: "zone-010", Domain: "equitybank.co.ke", Plan: "Enterprise", AppSecUsage: 9.8, MonthlyRequests: 32000000, BandwidthUsage: 2100},
			},
			TotalZones:       1,
			MonthlySpend:     6200,
			RegistrationDate: "2024-03-02",
			Industry:         "Financial Services",
			Size:             "Large Enterprise",
			AppSecUsage:      AppSecUsage{CDN: 6.2, WAF: 5.1, DDoSProtection: 3.4, LoadBalancing: 0.8, Spectrum: 0.5, Argo: 0.4, Total: 16.4},
			ZTNAUsage:        ZTNAUsage{Gateway: 210, Access: 140, DLP: 78, CASB: 46, BrowserIsolation: 30, Essential: 110, Advanced: 78, Premier: 42, Total: 734},
			EmailUsage:       EmailSecurityUsage{Area1: 1250, AdvancedThreatProtection: 520, Total: 1770},
		},
	}

	revenue := []RevenueData{
		{Month: "Jan", Year: 2025, TotalRevenue: 2850000, AppSecRevenue: 1710000, ZTNARevenue: 798000, EmailRevenue: 342000, NewPartners: 6, NewCustomers: 125, ChurnRate: 2.1},
		{Month: "Feb", Year: 2025, TotalRevenue: 3125000, AppSecRevenue: 1875000, ZTNARevenue: 875000, EmailRevenue: 375000, NewPartners: 5, NewCustomers: 142, ChurnRate: 1.8},
		{Month: "Mar", Year: 2025, TotalRevenue: 3385000, AppSecRevenue: 2031000, ZTNARevenue: 947200, EmailRevenue: 406800, NewPartners: 8, NewCustomers: 165, ChurnRate: 2.3},
		{Month: "Apr", Year: 2025, TotalRevenue: 3640000, AppSecRevenue: 2184000, ZTNARevenue: 1019200, EmailRevenue: 436800, NewPartners: 4, NewCustomers: 158, ChurnRate: 1.9},
		{Month: "May", Year: 2025, TotalRevenue: 3920000, AppSecRevenue: 2352000, ZTNARevenue: 1097600, EmailRevenue: 470400, NewPartners: 7, NewCustomers: 171, ChurnRate: 2.0},
		{Month: "Jun", Year: 2025, TotalRevenue: 4215000, AppSecRevenue: 2529000, ZTNARevenue: 1180200, EmailRevenue: 505800, NewPartners: 7, NewCustomers: 186, ChurnRate: 1.7},
	}

	industries := []IndustrySegment{
		{Name: "Technology", Percentage: 28, Customers: 485},
		{Name: "Financial Services", Percentage: 22, Customers: 382},
		{Name: "Healthcare", Percentage: 18, Customers: 347},
		{Name: "Manufacturing", Percentage: 15, Customers: 306},
		{Name: "Retail", Percentage: 12, Customers: 265},
		{Name: "Government", Percentage: 5, Customers: 89},
	}

	services := []ServiceDistribution{
		{
			Name: "Application Security", Percentage: 30, TotalUsage: "2,123 TB",
			Breakdown: []ServiceBreakdownItem{
				{Name: "CDN", Percentage: 12.5, Usage: "925 TB", Revenue: 111000},
				{Name: "WAF", Percentage: 10, Usage: "638 TB", Revenue: 76500},
				{Name: "DDoS Protection", Percentage: 5, Usage: "325 TB", Revenue: 39000},
				{Name: "Load Balancing", Percentage: 1.5, Usage: "93 TB", Revenue: 11100},
				{Name: "Spectrum", Percentage: 0.75, Usage: "51 TB", Revenue: 6120},
				{Name: "Argo Smart Routing", Percentage: 0.25, Usage: "53 TB", Revenue: 6300},
			},
		},
		{
			Name: "Zero Trust", Percentage: 60, TotalUsage: "125,700 Seats",
			Breakdown: []ServiceBreakdownItem{
				{Name: "Gateway", Percentage: 24, Usage: "36,900 Seats", Revenue: 295200},
				{Name: "Access", Percentage: 16, Usage: "25,360 Seats", Revenue: 202880},
				{Name: "DLP", Percentage: 10, Usage: "15,780 Seats", Revenue: 126240},
				{Name: "CASB", Percentage: 6, Usage: "9,040 Seats", Revenue: 72320},
				{Name: "Browser Isolation", Percentage: 4, Usage: "5,680 Seats", Revenue: 45440},
			},
		},
		{
			Name: "Email Security", Percentage: 10, TotalUsage: "185,800 Inboxes",
			Breakdown: []ServiceBreakdownItem{
				{Name: "Area 1", Percentage: 7, Usage: "127,500 Inboxes", Revenue: 318750},
				{Name: "Advanced Threat Protection", Percentage: 3, Usage: "58,300 Inboxes", Revenue: 145750},
			},
		},
	}

	return &Dataset{
		PricingTiers:         tiers,
		Partners:             partners,
		Customers:            customers,
		RevenueHistory:       revenue,
		Industries:           industries,
		ServiceDistributions: services,
	}
}
