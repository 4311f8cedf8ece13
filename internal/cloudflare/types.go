package cloudflare

import "encoding/json"

// Credentials holds the Synopsis MSP tenant credentials attached to every
// API call. The tenant unit ID binds created accounts to the reseller's
// tenancy.
type Credentials struct {
	AuthEmail    string `json:"auth_email"`
	AuthKey      string `json:"auth_key"`
	TenantUnitID string `json:"tenant_unit_id"`
}

// ResponseError is one entry of the "errors" list in an API envelope.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the JSON envelope every Cloudflare v4 endpoint returns.
// Result is left raw so each operation can decode its own payload.
type APIResponse struct {
	Success  bool            `json:"success"`
	Errors   []ResponseError `json:"errors,omitempty"`
	Messages []string        `json:"messages,omitempty"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// HasResult reports whether the envelope carries a non-null result payload.
func (r *APIResponse) HasResult() bool {
	return len(r.Result) > 0 && string(r.Result) != "null"
}

// AccountSettings mirrors the settings block of an account resource.
type AccountSettings struct {
	EnforceTwoFactor bool `json:"enforce_twofactor"`
}

// Account is the result payload of account creation and listing.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Status   string          `json:"status,omitempty"`
	Settings AccountSettings `json:"settings"`
}

// Member is the result payload of adding a user to an account.
type Member struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// AccountRef is the account binding embedded in zone payloads.
type AccountRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Zone is the result payload of zone creation.
type Zone struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Account     AccountRef `json:"account"`
	NameServers []string   `json:"name_servers,omitempty"`
}

// RatePlan identifies a commercial billing tier.
type RatePlan struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ComponentValue is one named, quantified billing dimension attached to a
// subscription (seat counts, per-service on/off switches).
type ComponentValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Subscription is the result payload of zone and account subscription calls.
type Subscription struct {
	ID              string           `json:"id"`
	RatePlan        RatePlan         `json:"rate_plan"`
	ComponentValues []ComponentValue `json:"component_values,omitempty"`
}

// TenantUnit is one organizational unit within a tenant.
type TenantUnit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Tenant is the result payload of the tenant listing endpoint.
type Tenant struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Units []TenantUnit `json:"units,omitempty"`
}

// CreateAccountParams carries the account-creation fields. The optional KYC
// fields are omitted from the wire payload when unset, the API rejects empty
// strings for them.
type CreateAccountParams struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	BusinessName     string `json:"business_name,omitempty"`
	BusinessEmail    string `json:"business_email,omitempty"`
	BusinessAddress  string `json:"business_address,omitempty"`
	BusinessPhone    string `json:"business_phone,omitempty"`
	ExternalMetadata string `json:"external_metadata,omitempty"`
}
