package dashboard

// Region is a sales region grouping for partners and customers.
type Region string

const (
	RegionAMER   Region = "AMER"
	RegionEMEA   Region = "EMEA"
	RegionAPAC   Region = "APAC"
	RegionLATAM  Region = "LATAM"
	RegionJapan  Region = "JAPAN"
	RegionGlobal Region = "GLOBAL"
)

// PartnerType identifies the partner's position in the reseller hierarchy.
type PartnerType string

const (
	PartnerDistributor PartnerType = "distributor"
	PartnerDirectMSSP  PartnerType = "direct-mssp"
	PartnerSI          PartnerType = "si-partner"
	PartnerManagedMSSP PartnerType = "distributor-managed-mssp"
)

// PartnerStatus is the commercial standing of a partner.
type PartnerStatus string

const (
	StatusActive    PartnerStatus = "active"
	StatusInactive  PartnerStatus = "inactive"
	StatusSuspended PartnerStatus = "suspended"
)

// AppSecUsage is application-security consumption in TB per product.
type AppSecUsage struct {
	CDN            float64 `json:"cdn"`
	WAF            float64 `json:"waf"`
	DDoSProtection float64 `json:"ddosProtection"`
	LoadBalancing  float64 `json:"loadBalancing"`
	Spectrum       float64 `json:"spectrum"`
	Argo           float64 `json:"argo"`
	Total          float64 `json:"total"`
}

// ZTNAUsage is Zero Trust consumption in seats per product and bundle.
type ZTNAUsage struct {
	Gateway          int `json:"gateway"`
	Access           int `json:"access"`
	DLP              int `json:"dlp"`
	CASB             int `json:"casb"`
	BrowserIsolation int `json:"browserIsolation"`
	Essential        int `json:"essential"`
	Advanced         int `json:"advanced"`
	Premier          int `json:"premier"`
	Total            int `json:"total"`
}

// EmailSecurityUsage is email-security consumption in protected inboxes.
type EmailSecurityUsage struct {
	Area1                    int `json:"area1"`
	AdvancedThreatProtection int `json:"advancedThreatProtection"`
	Total                    int `json:"total"`
}

// PricingTier is the per-unit rate card applied to a partner's usage.
type PricingTier struct {
	AppSecRate       float64 `json:"appSecRate"` // per TB
	ZTNARate         float64 `json:"ztnaRate"`   // per seat
	EmailRate        float64 `json:"emailRate"`  // per inbox
	Currency         string  `json:"currency"`
	EffectiveDate    string  `json:"effectiveDate"`
	PriceListVersion string  `json:"priceListVersion"`
}

// ContractedCapacity is the usage ceiling a partner has committed to. Usage
// alerts fire as consumption approaches these limits.
type ContractedCapacity struct {
	AppSecTB     float64 `json:"appSecTb"`
	ZTNASeats    int     `json:"ztnaSeats"`
	EmailInboxes int     `json:"emailInboxes"`
}

// Partner is one node of the reseller hierarchy. The portal frontend models
// the four partner kinds as a union; here a single struct with a Type
// discriminator and optional hierarchy links covers all of them.
type Partner struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Type              PartnerType        `json:"type"`
	Region            Region             `json:"region"`
	Country           []string           `json:"country"`
	Tier              int                `json:"tier"`
	Status            PartnerStatus      `json:"status"`
	MonthlyGrowth     float64            `json:"monthlyGrowth"`
	RegistrationDate  string             `json:"registrationDate"`
	ContactEmail      string             `json:"contactEmail"`
	AccountManager    string             `json:"accountManager"`
	ParentDistributor string             `json:"parentDistributor,omitempty"`
	ParentSI          string             `json:"parentSI,omitempty"`
	ManagedSIPartners []string           `json:"managedSIPartners,omitempty"`
	ManagedMSSPs      []string           `json:"managedMSSPs,omitempty"`
	Customers         []string           `json:"customers,omitempty"`
	TotalPartners     int                `json:"totalPartners,omitempty"`
	TotalCustomers    int                `json:"totalCustomers"`
	TotalRevenue      float64            `json:"totalRevenue"`
	AppSecUsage       AppSecUsage        `json:"appSecUsage"`
	ZTNAUsage         ZTNAUsage          `json:"ztnaUsage"`
	EmailUsage        EmailSecurityUsage `json:"emailUsage"`
	Pricing           PricingTier        `json:"pricing"`
	Capacity          ContractedCapacity `json:"capacity"`
}

// ZoneData is one onboarded zone of a customer account.
type ZoneData struct {
	ID              string  `json:"id"`
	Domain          string  `json:"domain"`
	Plan            string  `json:"plan"`
	AppSecUsage     float64 `json:"appSecUsage"`
	MonthlyRequests int64   `json:"monthlyRequests"`
	BandwidthUsage  float64 `json:"bandwidthUsage"`
}

// CustomerAccount is an end customer managed by a partner.
type CustomerAccount struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	AccountID         string             `json:"accountId"`
	ParentPartner     string             `json:"parentPartner"`
	ParentPartnerType PartnerType        `json:"parentPartnerType"`
	Region            Region             `json:"region"`
	Country           string             `json:"country"`
	Zones             []ZoneData         `json:"zones"`
	TotalZones        int                `json:"totalZones"`
	MonthlySpend      float64            `json:"monthlySpend"`
	RegistrationDate  string             `json:"registrationDate"`
	Industry          string             `json:"industry"`
	Size              string             `json:"size"`
	AppSecUsage       AppSecUsage        `json:"appSecUsage"`
	ZTNAUsage         ZTNAUsage          `json:"ztnaUsage"`
	EmailUsage        EmailSecurityUsage `json:"emailUsage"`
}

// RevenueData is one month of the revenue history.
type RevenueData struct {
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AppSecRevenue float64 `json:"appSecRevenue"`
	ZTNARevenue   float64 `json:"ztnaRevenue"`
	EmailRevenue  float64 `json:"emailRevenue"`
	NewPartners   int     `json:"newPartners"`
	NewCustomers  int     `json:"newCustomers"`
	ChurnRate     float64 `json:"churnRate"`
}

// Metrics is the aggregated headline view of the partner business.
type Metrics struct {
	TotalDistributors int     `json:"totalDistributors"`
	TotalDirectMSSPs  int     `json:"totalDirectMSSPs"`
	TotalSIPartners   int     `json:"totalSIPartners"`
	TotalManagedMSSPs int     `json:"totalDistributorManagedMSSPs"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppSecUsage  float64 `json:"totalAppSecUsage"`
	TotalZTNASeats    int     `json:"totalZTNASeats"`
	TotalEmailInboxes int     `json:"totalEmailInboxes"`
	MonthlyGrowthRate float64 `json:"monthlyGrowthRate"`
	ChurnRate         float64 `json:"churnRate"`
}

// AlertLevel grades a usage alert.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// UsageAlert flags a partner whose usage is approaching its contracted
// threshold.
type UsageAlert struct {
	ID           string     `json:"id"`
	PartnerID    string     `json:"partnerId"`
	PartnerName  string     `json:"partnerName"`
	Type         string     `json:"type"` // appsec, ztna, email
	Threshold    float64    `json:"threshold"`
	CurrentUsage float64    `json:"currentUsage"`
	Percentage   float64    `json:"percentage"`
	AlertLevel   AlertLevel `json:"alertLevel"`
	CreatedAt    string     `json:"createdAt"`
}

// CommercialReport is the per-partner monthly commercial rollup: usage priced
// at the partner's tier against revenue.
type CommercialReport struct {
	PartnerID        string             `json:"partnerId"`
	PartnerName      string             `json:"partnerName"`
	PartnerType      PartnerType        `json:"partnerType"`
	Region           Region             `json:"region"`
	ReportMonth      string             `json:"reportMonth"`
	AppSecUsage      AppSecUsage        `json:"appSecUsage"`
	ZTNAUsage        ZTNAUsage          `json:"ztnaUsage"`
	EmailUsage       EmailSecurityUsage `json:"emailUsage"`
	Pricing          PricingTier        `json:"pricing"`
	TotalCost        float64            `json:"totalCost"`
	TotalRevenue     float64            `json:"totalRevenue"`
	Margin           float64            `json:"margin"`
	PriceListApplied string             `json:"priceListApplied"`
}

// IndustrySegment is one slice of the customer industry distribution.
type IndustrySegment struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Customers  int     `json:"customers"`
}

// ServiceBreakdownItem is one product line within a service family.
type ServiceBreakdownItem struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Usage      string  `json:"usage"`
	Revenue    float64 `json:"revenue"`
}

// ServiceDistribution is the usage split of one service family.
type ServiceDistribution struct {
	Name       string                 `json:"name"`
	Percentage float64                `json:"percentage"`
	TotalUsage string                 `json:"totalUsage"`
	Breakdown  []ServiceBreakdownItem `json:"breakdown"`
}
