package onboarding

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
)

// ErrNoZeroTrustPlan is returned when a Zero Trust subscription is requested
// for an input whose plan selector is none. No network call is made.
var ErrNoZeroTrustPlan = errors.New("no Zero Trust plan selected")

// API is the slice of the Cloudflare client the orchestrator drives.
type API interface {
	CreateAccount(ctx context.Context, params cloudflare.CreateAccountParams) (*cloudflare.Account, error)
	AddAccountMember(ctx context.Context, accountID, email, role string) (*cloudflare.Member, error)
	CreateZone(ctx context.Context, accountID, domain string) (*cloudflare.Zone, error)
	CreateOrUpdateZoneSubscription(ctx context.Context, zoneID string) (*cloudflare.Subscription, error)
	CreateZeroTrustSubscription(ctx context.Context, accountID string, components []cloudflare.ComponentValue) (*cloudflare.Subscription, error)
}

// ProgressFunc observes progress snapshots. It is invoked synchronously after
// every state transition, in strict step order, and must not block; it cannot
// veto or pause a transition.
type ProgressFunc func(*Progress)

// Orchestrator drives the customer onboarding workflow: account, admin
// member, DNS zone, commercial rate plan, and optionally a Zero Trust
// subscription — one external call per step, aborting on the first failure.
//
// Side effects of already-completed steps are NOT rolled back when a later
// step fails. An account created before a zone-creation failure stays behind
// for manual cleanup; operators triage failed runs from the progress record.
type Orchestrator struct {
	api    API
	logger *zap.Logger
}

// NewOrchestrator creates an orchestrator backed by the given API client.
func NewOrchestrator(api API, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{api: api, logger: logger}
}

// ValidateZeroTrustConfig checks the Zero Trust business rules for an input.
// Synchronous and side-effect free; Onboard does not re-run it.
func (o *Orchestrator) ValidateZeroTrustConfig(in *Input) ValidationResult {
	return ValidateZeroTrustConfig(in)
}

// stepExec pairs a step definition with the call that executes it.
type stepExec struct {
	id   string
	name string
	run  func(ctx context.Context) (any, error)
}

// Onboard runs the full workflow for one customer. Steps execute strictly
// sequentially; each one's result is recorded on the progress object before
// the next begins. On any step failure the run stops, the failing step
// carries the error message, all later steps stay pending, and the error is
// returned alongside the partial progress.
//
// Concurrent Onboard calls share no state. Nothing here prevents two runs
// from racing on the same domain; duplicate accounts or zone conflicts
// surface as ordinary step errors.
func (o *Orchestrator) Onboard(ctx context.Context, in *Input, onProgress ProgressFunc) (*Progress, error) {
	progress := &Progress{RunID: uuid.New().String()}
	execs := o.buildSteps(in, progress)
	for _, exec := range execs {
		progress.Steps = append(progress.Steps, Step{ID: exec.id, Name: exec.name, Status: StepPending})
	}

	emit := func() {
		if onProgress != nil {
			onProgress(progress)
		}
	}

	o.logger.Info("starting onboarding run",
		zap.String("run_id", progress.RunID),
		zap.String("account_name", in.AccountName),
		zap.String("domain", in.DomainName),
		zap.String("zero_trust_plan", string(in.ZeroTrustPlan)),
	)

	for i := range execs {
		step := &progress.Steps[i]
		step.Status = StepInProgress
		emit()

		result, err := execs[i].run(ctx)
		if err != nil {
			step.Status = StepError
			step.Error = err.Error()
			emit()

			o.logger.Error("onboarding step failed",
				zap.String("run_id", progress.RunID),
				zap.String("step", step.ID),
				zap.Error(err),
			)
			return progress, err
		}

		step.Status = StepCompleted
		step.Result = result
		progress.CurrentStep = i + 1
		emit()
	}

	progress.IsCompleted = true
	emit()

	o.logger.Info("onboarding run completed",
		zap.String("run_id", progress.RunID),
		zap.String("account_id", progress.AccountID),
		zap.String("zone_id", progress.ZoneID),
	)
	return progress, nil
}

// buildSteps wires each step to its API call. The Zero Trust step is
// included only when a plan is selected. Identifiers captured by earlier
// steps feed the later ones through the shared progress record.
func (o *Orchestrator) buildSteps(in *Input, progress *Progress) []stepExec {
	execs := []stepExec{
		{
			id:   StepCreateAccount,
			name: "Create Customer Account",
			run: func(ctx context.Context) (any, error) {
				account, err := o.api.CreateAccount(ctx, cloudflare.CreateAccountParams{
					Name:             in.AccountName,
					Type:             string(in.AccountType),
					BusinessName:     in.BusinessName,
					BusinessEmail:    in.BusinessEmail,
					BusinessAddress:  in.BusinessAddress,
					BusinessPhone:    in.BusinessPhone,
					ExternalMetadata: in.ExternalMetadata,
				})
				if err != nil {
					return nil, err
				}
				progress.AccountID = account.ID
				return account, nil
			},
		},
		{
			id:   StepAddUser,
			name: "Add Customer User",
			run: func(ctx context.Context) (any, error) {
				return o.api.AddAccountMember(ctx, progress.AccountID, in.CustomerEmail, in.CustomerRole)
			},
		},
		{
			id:   StepCreateZone,
			name: "Create Domain Zone",
			run: func(ctx context.Context) (any, error) {
				zone, err := o.api.CreateZone(ctx, progress.AccountID, in.DomainName)
				if err != nil {
					return nil, err
				}
				progress.ZoneID = zone.ID
				if len(zone.NameServers) >= 2 {
					progress.NameServers = &NameServerPair{
						NameServer1: zone.NameServers[0],
						NameServer2: zone.NameServers[1],
					}
				}
				return zone, nil
			},
		},
		{
			id:   StepApplyPlan,
			name: "Apply MSSP Rate Plan",
			run: func(ctx context.Context) (any, error) {
				return o.api.CreateOrUpdateZoneSubscription(ctx, progress.ZoneID)
			},
		},
	}

	if in.ZeroTrustPlan != PlanNone {
		execs = append(execs, stepExec{
			id:   StepZeroTrust,
			name: "Configure Zero Trust",
			run: func(ctx context.Context) (any, error) {
				return o.createZeroTrustSubscription(ctx, progress.AccountID, in)
			},
		})
	}

	return execs
}

// createZeroTrustSubscription computes the billable components for the
// selected plan and posts the account-level subscription. Fails fast, before
// any network call, when no plan is selected.
func (o *Orchestrator) createZeroTrustSubscription(ctx context.Context, accountID string, in *Input) (*cloudflare.Subscription, error) {
	if in.ZeroTrustPlan == PlanNone {
		return nil, ErrNoZeroTrustPlan
	}
	return o.api.CreateZeroTrustSubscription(ctx, accountID, ZeroTrustComponentValues(in))
}
