package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
)

// MockAPI is a mock implementation of the API interface
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CreateAccount(ctx context.Context, params cloudflare.CreateAccountParams) (*cloudflare.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudflare.Account), args.Error(1)
}

func (m *MockAPI) AddAccountMember(ctx context.Context, accountID, email, role string) (*cloudflare.Member, error) {
	args := m.Called(ctx, accountID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudflare.Member), args.Error(1)
}

func (m *MockAPI) CreateZone(ctx context.Context, accountID, domain string) (*cloudflare.Zone, error) {
	args := m.Called(ctx, accountID, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudflare.Zone), args.Error(1)
}

func (m *MockAPI) CreateOrUpdateZoneSubscription(ctx context.Context, zoneID string) (*cloudflare.Subscription, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudflare.Subscription), args.Error(1)
}

func (m *MockAPI) CreateZeroTrustSubscription(ctx context.Context, accountID string, components []cloudflare.ComponentValue) (*cloudflare.Subscription, error) {
	args := m.Called(ctx, accountID, components)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudflare.Subscription), args.Error(1)
}

func acmeInput() *Input {
	return &Input{
		AccountName:   "Acme",
		AccountType:   AccountTypeStandard,
		CustomerEmail: "a@acme.com",
		CustomerRole:  "Administrator",
		DomainName:    "acme.com",
		ZeroTrustPlan: PlanNone,
	}
}

func TestOnboardCompletesWithoutZeroTrust(t *testing.T) {
	api := new(MockAPI)
	api.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&cloudflare.Account{ID: "acct-1", Name: "Acme"}, nil)
	api.On("AddAccountMember", mock.Anything, "acct-1", "a@acme.com", "Administrator").
		Return(&cloudflare.Member{ID: "mem-1", Email: "a@acme.com"}, nil)
	api.On("CreateZone", mock.Anything, "acct-1", "acme.com").
		Return(&cloudflare.Zone{ID: "zone-1", Name: "acme.com", NameServers: []string{"ns1.example.net", "ns2.example.net"}}, nil)
	api.On("CreateOrUpdateZoneSubscription", mock.Anything, "zone-1").
		Return(&cloudflare.Subscription{ID: "sub-1"}, nil)

	orchestrator := NewOrchestrator(api, zap.NewNop())

	var snapshots int
	progress, err := orchestrator.Onboard(context.Background(), acmeInput(), func(p *Progress) {
		snapshots++
	})

	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)
	assert.Equal(t, "acct-1", progress.AccountID)
	assert.Equal(t, "zone-1", progress.ZoneID)
	require.NotNil(t, progress.NameServers)
	assert.Equal(t, "ns1.example.net", progress.NameServers.NameServer1)
	assert.Equal(t, "ns2.example.net", progress.NameServers.NameServer2)

	require.Len(t, progress.Steps, 4)
	for _, step := range progress.Steps {
		assert.Equal(t, StepCompleted, step.Status)
		assert.NotNil(t, step.Result)
	}
	for _, step := range progress.Steps {
		assert.NotEqual(t, StepZeroTrust, step.ID)
	}

	// Two snapshots per step (in-progress, completed) plus the final one.
	assert.Equal(t, 9, snapshots)
	api.AssertExpectations(t)
	api.AssertNotCalled(t, "CreateZeroTrustSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnboardIncludesZeroTrustStep(t *testing.T) {
	input := acmeInput()
	input.ZeroTrustPlan = PlanAdvanced
	input.ZeroTrustSeats = 25

	api := new(MockAPI)
	api.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&cloudflare.Account{ID: "acct-1"}, nil)
	api.On("AddAccountMember", mock.Anything, "acct-1", "a@acme.com", "Administrator").
		Return(&cloudflare.Member{ID: "mem-1"}, nil)
	api.On("CreateZone", mock.Anything, "acct-1", "acme.com").
		Return(&cloudflare.Zone{ID: "zone-1"}, nil)
	api.On("CreateOrUpdateZoneSubscription", mock.Anything, "zone-1").
		Return(&cloudflare.Subscription{ID: "sub-1"}, nil)
	api.On("CreateZeroTrustSubscription", mock.Anything, "acct-1", ZeroTrustComponentValues(input)).
		Return(&cloudflare.Subscription{ID: "sub-2"}, nil)

	orchestrator := NewOrchestrator(api, zap.NewNop())
	progress, err := orchestrator.Onboard(context.Background(), input, nil)

	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)
	require.Len(t, progress.Steps, 5)
	assert.Equal(t, StepZeroTrust, progress.Steps[4].ID)
	assert.Equal(t, StepCompleted, progress.Steps[4].Status)
	api.AssertExpectations(t)
}

func TestOnboardStopsOnStepFailure(t *testing.T) {
	api := new(MockAPI)
	api.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&cloudflare.Account{ID: "acct-1"}, nil)
	api.On("AddAccountMember", mock.Anything, "acct-1", "a@acme.com", "Administrator").
		Return(&cloudflare.Member{ID: "mem-1"}, nil)
	api.On("CreateZone", mock.Anything, "acct-1", "acme.com").
		Return(nil, errors.New("zone already exists"))

	orchestrator := NewOrchestrator(api, zap.NewNop())

	var lastSnapshot *Progress
	progress, err := orchestrator.Onboard(context.Background(), acmeInput(), func(p *Progress) {
		lastSnapshot = p
	})

	require.EqualError(t, err, "zone already exists")
	assert.False(t, progress.IsCompleted)

	require.Len(t, progress.Steps, 4)
	assert.Equal(t, StepCompleted, progress.Steps[0].Status)
	assert.Equal(t, StepCompleted, progress.Steps[1].Status)
	assert.Equal(t, StepError, progress.Steps[2].Status)
	assert.Equal(t, "zone already exists", progress.Steps[2].Error)
	assert.Equal(t, StepPending, progress.Steps[3].Status)

	// Completed step results stay visible after the failure.
	assert.NotNil(t, progress.Steps[0].Result)
	assert.Equal(t, "acct-1", progress.AccountID)

	// The error snapshot is emitted before the error is returned.
	require.NotNil(t, lastSnapshot)
	assert.Equal(t, StepError, lastSnapshot.Steps[2].Status)

	api.AssertNotCalled(t, "CreateOrUpdateZoneSubscription", mock.Anything, mock.Anything)
}

func TestOnboardDoesNotRevalidateBusinessRules(t *testing.T) {
	// An illegal à-la-carte combination fails the pure validator, but the
	// orchestrator itself runs anyway: validation is the caller's gate.
	input := acmeInput()
	input.ZeroTrustPlan = PlanAlaCarte
	input.ZeroTrustSeats = 50
	input.AlaCarteService = []AlaCarteService{ServiceAccess, ServiceGateway}

	result := ValidateZeroTrustConfig(input)
	assert.False(t, result.IsValid)

	api := new(MockAPI)
	api.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&cloudflare.Account{ID: "acct-1"}, nil)
	api.On("AddAccountMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&cloudflare.Member{ID: "mem-1"}, nil)
	api.On("CreateZone", mock.Anything, mock.Anything, mock.Anything).
		Return(&cloudflare.Zone{ID: "zone-1"}, nil)
	api.On("CreateOrUpdateZoneSubscription", mock.Anything, mock.Anything).
		Return(&cloudflare.Subscription{ID: "sub-1"}, nil)
	api.On("CreateZeroTrustSubscription", mock.Anything, "acct-1", mock.Anything).
		Return(&cloudflare.Subscription{ID: "sub-2"}, nil)

	orchestrator := NewOrchestrator(api, zap.NewNop())
	progress, err := orchestrator.Onboard(context.Background(), input, nil)

	require.NoError(t, err)
	assert.True(t, progress.IsCompleted)
	api.AssertExpectations(t)
}

func TestOnboardSnapshotOrdering(t *testing.T) {
	api := new(MockAPI)
	api.On("CreateAccount", mock.Anything, mock.Anything).
		Return(&cloudflare.Account{ID: "acct-1"}, nil)
	api.On("AddAccountMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&cloudflare.Member{ID: "mem-1"}, nil)
	api.On("CreateZone", mock.Anything, mock.Anything, mock.Anything).
		Return(&cloudflare.Zone{ID: "zone-1"}, nil)
	api.On("CreateOrUpdateZoneSubscription", mock.Anything, mock.Anything).
		Return(&cloudflare.Subscription{ID: "sub-1"}, nil)

	orchestrator := NewOrchestrator(api, zap.NewNop())

	var currentSteps []int
	_, err := orchestrator.Onboard(context.Background(), acmeInput(), func(p *Progress) {
		currentSteps = append(currentSteps, p.CurrentStep)
	})
	require.NoError(t, err)

	// CurrentStep never goes backwards across snapshots.
	for i := 1; i < len(currentSteps); i++ {
		assert.GreaterOrEqual(t, currentSteps[i], currentSteps[i-1])
	}
}
