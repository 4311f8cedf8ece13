package onboarding

// AccountType distinguishes standard from enterprise customer accounts.
type AccountType string

const (
	AccountTypeStandard   AccountType = "standard"
	AccountTypeEnterprise AccountType = "enterprise"
)

// ZeroTrustPlan selects either no Zero Trust provisioning, one of the bundled
// tiers, or an à-la-carte service set.
type ZeroTrustPlan string

const (
	PlanNone          ZeroTrustPlan = "none"
	PlanEssential     ZeroTrustPlan = "essential"
	PlanAdvanced      ZeroTrustPlan = "advanced"
	PlanPremier       ZeroTrustPlan = "premier"
	PlanEssentialPlus ZeroTrustPlan = "essential-plus"
	PlanAdvancedPlus  ZeroTrustPlan = "advanced-plus"
	PlanPremierPlus   ZeroTrustPlan = "premier-plus"
	PlanAlaCarte      ZeroTrustPlan = "alacarte"
)

// IsBundle reports whether the plan is one of the bundled tiers, the only
// plans the add-on override layer applies to.
func (p ZeroTrustPlan) IsBundle() bool {
	switch p {
	case PlanEssential, PlanAdvanced, PlanPremier, PlanEssentialPlus, PlanAdvancedPlus, PlanPremierPlus:
		return true
	}
	return false
}

// AlaCarteService is one individually purchasable Zero Trust service.
type AlaCarteService string

const (
	ServiceAccess           AlaCarteService = "access"
	ServiceGateway          AlaCarteService = "gateway"
	ServiceBrowserIsolation AlaCarteService = "browser-isolation"
	ServiceArea1            AlaCarteService = "area1"
	ServiceCASB             AlaCarteService = "casb"
	ServiceDLP              AlaCarteService = "dlp"
)

// AddOns are explicit overrides layered on top of a bundled plan's defaults.
// Nil pointers mean "no override requested".
type AddOns struct {
	BrowserIsolation *int  `json:"browserIsolation,omitempty"`
	CASB             *bool `json:"casb,omitempty"`
	DLP              *bool `json:"dlp,omitempty"`
}

// Input is the caller-supplied onboarding record, immutable for the duration
// of one run. Field names mirror the wizard form.
type Input struct {
	// Account details
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`

	// Business information (KYC), all optional
	BusinessName     string `json:"businessName,omitempty"`
	BusinessEmail    string `json:"businessEmail,omitempty"`
	BusinessAddress  string `json:"businessAddress,omitempty"`
	BusinessPhone    string `json:"businessPhone,omitempty"`
	ExternalMetadata string `json:"externalMetadata,omitempty"`

	// Customer admin user
	CustomerEmail string `json:"customerEmail"`
	CustomerRole  string `json:"customerRole,omitempty"`

	// Zone
	DomainName string `json:"domainName"`

	// Zero Trust configuration
	ZeroTrustPlan   ZeroTrustPlan     `json:"zeroTrustPlan"`
	ZeroTrustSeats  int               `json:"zeroTrustSeats,omitempty"`
	AlaCarteService []AlaCarteService `json:"alaCarteServices,omitempty"`
	AddOns          *AddOns           `json:"addOns,omitempty"`
}

// HasAlaCarteService reports whether the à-la-carte set contains the service.
func (in *Input) HasAlaCarteService(service AlaCarteService) bool {
	for _, s := range in.AlaCarteService {
		if s == service {
			return true
		}
	}
	return false
}

// StepStatus is the lifecycle state of one workflow step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in-progress"
	StepCompleted  StepStatus = "completed"
	StepError      StepStatus = "error"
)

// Workflow step identifiers, in execution order.
const (
	StepCreateAccount = "create-account"
	StepAddUser       = "add-user"
	StepCreateZone    = "create-zone"
	StepApplyPlan     = "apply-plan"
	StepZeroTrust     = "zero-trust"
)

// Step is one stage of the onboarding workflow. Once a step reaches
// completed or error it never changes again.
type Step struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	Result any        `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// NameServerPair is the pair of authoritative nameservers assigned to a
// newly-created zone.
type NameServerPair struct {
	NameServer1 string `json:"nameServer1"`
	NameServer2 string `json:"nameServer2"`
}

// Progress is the mutable state of one onboarding run, owned by the
// orchestrator and exposed to callers only through progress snapshots.
// IsCompleted turns true only after every included step completes; on a step
// failure it stays false permanently.
type Progress struct {
	RunID       string          `json:"runId"`
	Steps       []Step          `json:"steps"`
	CurrentStep int             `json:"currentStep"`
	IsCompleted bool            `json:"isCompleted"`
	AccountID   string          `json:"accountId,omitempty"`
	ZoneID      string          `json:"zoneId,omitempty"`
	NameServers *NameServerPair `json:"nameServers,omitempty"`
}
