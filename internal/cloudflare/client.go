package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultBaseURL is the Cloudflare v4 REST API root.
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"

	// ZoneRatePlanID is the MSSP commercial rate plan applied to every
	// onboarded zone.
	ZoneRatePlanID = "partners_biz"

	// ZeroTrustRatePlanID is the enterprise Zero Trust rate plan used for
	// account-level subscriptions.
	ZeroTrustRatePlanID = "TEAMS_ENT"

	// DefaultMemberRole is assigned when the caller does not specify a role.
	DefaultMemberRole = "Administrator"
)

// APIError is the normalized failure for any non-2xx response. Message is the
// first structured error message from the envelope when one is present,
// otherwise the raw status line.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a thin authenticated client for the Cloudflare REST API. It owns
// credential attachment and HTTP-level error normalization; it performs no
// retries.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	credentials Credentials
}

// NewClient creates a client bound to the given tenant credentials.
func NewClient(credentials Credentials) *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		HTTPClient:  http.DefaultClient,
		credentials: credentials,
	}
}

// Request performs one authenticated API call and decodes the response
// envelope. On a non-2xx status it returns an *APIError; the body is still
// parsed so the structured error message can be surfaced.
func (c *Client) Request(ctx context.Context, method, endpoint string, body interface{}) (*APIResponse, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth-email", c.credentials.AuthEmail)
	req.Header.Set("x-auth-key", c.credentials.AuthKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		var envelope APIResponse
		if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Errors) > 0 {
			message = envelope.Errors[0].Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	var envelope APIResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &envelope, nil
}

// CreateAccount creates a customer account bound to the configured tenant
// unit.
func (c *Client) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	payload := struct {
		CreateAccountParams
		Unit TenantUnit `json:"unit"`
	}{
		CreateAccountParams: params,
		Unit:                TenantUnit{ID: c.credentials.TenantUnitID},
	}

	resp, err := c.Request(ctx, http.MethodPost, "/accounts", payload)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(resp.Result, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account result: %w", err)
	}
	return &account, nil
}

// AddAccountMember adds a user to an account with a single role. An empty
// role falls back to DefaultMemberRole.
func (c *Client) AddAccountMember(ctx context.Context, accountID, email, role string) (*Member, error) {
	if role == "" {
		role = DefaultMemberRole
	}

	payload := struct {
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}{Email: email, Roles: []string{role}}

	resp, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("/accounts/%s/members", accountID), payload)
	if err != nil {
		return nil, err
	}

	var member Member
	if err := json.Unmarshal(resp.Result, &member); err != nil {
		return nil, fmt.Errorf("failed to decode member result: %w", err)
	}
	return &member, nil
}

// CreateZone creates a DNS zone under the given account.
func (c *Client) CreateZone(ctx context.Context, accountID, domain string) (*Zone, error) {
	payload := struct {
		Name    string     `json:"name"`
		Account AccountRef `json:"account"`
	}{Name: domain, Account: AccountRef{ID: accountID}}

	resp, err := c.Request(ctx, http.MethodPost, "/zones", payload)
	if err != nil {
		return nil, err
	}

	var zone Zone
	if err := json.Unmarshal(resp.Result, &zone); err != nil {
		return nil, fmt.Errorf("failed to decode zone result: %w", err)
	}
	return &zone, nil
}

// GetZoneSubscription reads the current subscription of a zone.
func (c *Client) GetZoneSubscription(ctx context.Context, zoneID string) (*Subscription, error) {
	resp, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/zones/%s/subscription", zoneID), nil)
	if err != nil {
		return nil, err
	}

	var subscription Subscription
	if err := json.Unmarshal(resp.Result, &subscription); err != nil {
		return nil, fmt.Errorf("failed to decode subscription result: %w", err)
	}
	return &subscription, nil
}

// CreateOrUpdateZoneSubscription applies the MSSP zone rate plan, updating an
// existing subscription when one is found and creating one otherwise.
func (c *Client) CreateOrUpdateZoneSubscription(ctx context.Context, zoneID string) (*Subscription, error) {
	payload := struct {
		RatePlan RatePlan `json:"rate_plan"`
	}{RatePlan: RatePlan{ID: ZoneRatePlanID}}

	method := http.MethodPost
	if c.probeZoneSubscription(ctx, zoneID) {
		method = http.MethodPut
	}

	resp, err := c.Request(ctx, method, fmt.Sprintf("/zones/%s/subscription", zoneID), payload)
	if err != nil {
		return nil, err
	}

	var subscription Subscription
	if err := json.Unmarshal(resp.Result, &subscription); err != nil {
		return nil, fmt.Errorf("failed to decode subscription result: %w", err)
	}
	return &subscription, nil
}

// probeZoneSubscription reports whether the zone already has a subscription.
// A failed probe counts as "does not exist" and the caller falls through to
// create: the discarded error is the single best-effort fallback in this
// client, not a retry path.
func (c *Client) probeZoneSubscription(ctx context.Context, zoneID string) bool {
	resp, err := c.Request(ctx, http.MethodGet, fmt.Sprintf("/zones/%s/subscription", zoneID), nil)
	if err != nil {
		return false
	}
	return resp.Success && resp.HasResult()
}

// CreateZeroTrustSubscription creates an account-level Zero Trust
// subscription with the given billable components.
func (c *Client) CreateZeroTrustSubscription(ctx context.Context, accountID string, components []ComponentValue) (*Subscription, error) {
	payload := struct {
		RatePlan        RatePlan         `json:"rate_plan"`
		ComponentValues []ComponentValue `json:"component_values"`
	}{
		RatePlan:        RatePlan{ID: ZeroTrustRatePlanID},
		ComponentValues: components,
	}

	resp, err := c.Request(ctx, http.MethodPost, fmt.Sprintf("/accounts/%s/subscriptions", accountID), payload)
	if err != nil {
		return nil, err
	}

	var subscription Subscription
	if err := json.Unmarshal(resp.Result, &subscription); err != nil {
		return nil, fmt.Errorf("failed to decode subscription result: %w", err)
	}
	return &subscription, nil
}

// ListAccounts returns the accounts visible to the tenant. Used by the
// onboarding wizard's existing-customer picker.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/accounts", nil)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := json.Unmarshal(resp.Result, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts result: %w", err)
	}
	return accounts, nil
}

// ListTenants returns the tenants the configured credentials belong to. A
// successful call doubles as a credential check.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	resp, err := c.Request(ctx, http.MethodGet, "/user/tenants", nil)
	if err != nil {
		return nil, err
	}

	var tenants []Tenant
	if err := json.Unmarshal(resp.Result, &tenants); err != nil {
		return nil, fmt.Errorf("failed to decode tenants result: %w", err)
	}
	return tenants, nil
}
