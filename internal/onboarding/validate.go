package onboarding

import "regexp"

// Conventional hostname and email shapes. These gate form input before any
// network call is made; the API remains the authority on what it accepts.
var (
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidDomainName reports whether s looks like a registrable hostname.
func ValidDomainName(s string) bool {
	return domainPattern.MatchString(s)
}

// ValidEmail reports whether s looks like a local@domain.tld address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidationResult carries the outcome of a pure business-rule check. Rule
// violations are returned as messages, never as errors.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateZeroTrustConfig checks the business constraints on a Zero Trust
// plan selection. Side-effect free; the orchestrator does not re-run it, so
// callers must gate on the result before starting a run.
func ValidateZeroTrustConfig(in *Input) ValidationResult {
	var errs []string

	if in.ZeroTrustPlan == PlanAlaCarte {
		if len(in.AlaCarteService) == 0 {
			errs = append(errs, "Please select at least one a la carte service")
		}

		if in.HasAlaCarteService(ServiceAccess) && in.HasAlaCarteService(ServiceGateway) {
			errs = append(errs, "Cannot combine Access and Gateway a la carte. Use bundled Zero Trust plan instead.")
		}

		// Overlaps with the check above on purpose: both guard the same
		// illegal pairing from different angles.
		if len(in.AlaCarteService) > 1 {
			exclusive := 0
			for _, service := range in.AlaCarteService {
				if service == ServiceAccess || service == ServiceGateway {
					exclusive++
				}
			}
			if exclusive > 0 {
				errs = append(errs, "A la carte plans cannot be combined. Choose bundled plan for multiple services.")
			}
		}
	}

	if in.AddOns != nil && in.AddOns.BrowserIsolation != nil &&
		*in.AddOns.BrowserIsolation > 0 && *in.AddOns.BrowserIsolation > in.ZeroTrustSeats {
		errs = append(errs, "Browser Isolation seats cannot exceed Zero Trust seats")
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateInput checks the whole onboarding record: syntactic domain and
// email shape plus every Zero Trust rule.
func ValidateInput(in *Input) ValidationResult {
	var errs []string

	if in.DomainName != "" && !ValidDomainName(in.DomainName) {
		errs = append(errs, "Domain name is not a valid hostname")
	}
	if in.CustomerEmail != "" && !ValidEmail(in.CustomerEmail) {
		errs = append(errs, "Customer email is not a valid email address")
	}
	if in.BusinessEmail != "" && !ValidEmail(in.BusinessEmail) {
		errs = append(errs, "Business email is not a valid email address")
	}

	zt := ValidateZeroTrustConfig(in)
	errs = append(errs, zt.Errors...)

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// CustomerType distinguishes onboarding a brand-new customer from attaching
// services to an existing account.
type CustomerType string

const (
	CustomerNew      CustomerType = "new"
	CustomerExisting CustomerType = "existing"
)

// ServiceType selects which service families the wizard provisions.
type ServiceType string

const (
	ServiceTypeAppSec    ServiceType = "appsec"
	ServiceTypeZeroTrust ServiceType = "zerotrust"
	ServiceTypeBoth      ServiceType = "both"
)

// Wizard step indices.
const (
	WizardStepCustomerType = iota
	WizardStepAccountSetup
	WizardStepServiceSelection
	WizardStepConfiguration
)

// WizardContext is the wizard state that shapes which per-step rules apply.
type WizardContext struct {
	CustomerType    CustomerType `json:"customerType"`
	ServiceType     ServiceType  `json:"serviceType"`
	SelectedAccount string       `json:"selectedAccount,omitempty"`
}

func (c WizardContext) wantsAppSec() bool {
	return c.ServiceType == ServiceTypeAppSec || c.ServiceType == ServiceTypeBoth
}

func (c WizardContext) wantsZeroTrust() bool {
	return c.ServiceType == ServiceTypeZeroTrust || c.ServiceType == ServiceTypeBoth
}

// ValidateWizardStep enforces the per-step required fields the wizard checks
// before advancing. It returns field-keyed messages; an empty map means the
// step may proceed. The rules here must stay consistent with the pure
// validators above.
func ValidateWizardStep(step int, wctx WizardContext, in *Input) map[string]string {
	errs := make(map[string]string)

	switch step {
	case WizardStepCustomerType:
		if wctx.CustomerType == CustomerExisting && wctx.SelectedAccount == "" {
			errs["selectedAccount"] = "Please select an existing account"
		}

	case WizardStepAccountSetup:
		if wctx.CustomerType == CustomerNew {
			if in.AccountName == "" {
				errs["accountName"] = "Account name is required"
			}
			if in.CustomerEmail == "" {
				errs["customerEmail"] = "Customer email is required"
			} else if !ValidEmail(in.CustomerEmail) {
				errs["customerEmail"] = "Please enter a valid email address"
			}
			if in.BusinessName == "" {
				errs["businessName"] = "Business name is required"
			}
		}

	case WizardStepServiceSelection:
		// Defaults are always valid.

	case WizardStepConfiguration:
		if wctx.wantsAppSec() {
			if in.DomainName == "" {
				errs["domainName"] = "Domain name is required"
			} else if !ValidDomainName(in.DomainName) {
				errs["domainName"] = "Please enter a valid domain name (e.g., example.com)"
			}
		}

		if wctx.wantsZeroTrust() {
			if in.ZeroTrustSeats < 1 {
				errs["zeroTrustSeats"] = "Zero Trust seats must be at least 1"
			}

			if in.ZeroTrustPlan == PlanAlaCarte {
				if len(in.AlaCarteService) == 0 {
					errs["alaCarteServices"] = "Please select at least one a la carte service"
				}
				if in.HasAlaCarteService(ServiceAccess) && in.HasAlaCarteService(ServiceGateway) {
					errs["alaCarteServices"] = "Access and Gateway cannot be combined in a la carte. Use a bundle instead."
				}
			}
		}
	}

	return errs
}
