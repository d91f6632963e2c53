package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
)

var (
	ErrMissingQuotationID      = errors.New("missing quotationId")
	ErrQuotationConfigMismatch = errors.New("configuration does not belong to quotation")
	ErrConfigurationNotFound   = errors.New("configuration not found")
)

// ITriggerRenderUseCase runs the drawing-generation workflow for one trigger
// event: resolve the configurations to render, purge stale output, dispatch
// one render job per configuration and record every outcome.

type ITriggerRenderUseCase interface {
	Trigger(ctx context.Context, event entities.TriggerEvent) (entities.TriggerOutcome, error)
}

type TriggerRenderUseCase struct {
	directory       interfaces.IQuotationDirectory
	dispatcher      interfaces.IRenderJobDispatcher
	auditLog        interfaces.IAuditLogSink
	expectedModelID string
}

var _ ITriggerRenderUseCase = (*TriggerRenderUseCase)(nil)

// NewTriggerRenderUseCase wires the orchestrator. auditLog may be nil, in
// which case the run proceeds without an operator trail.
func NewTriggerRenderUseCase(
	directory interfaces.IQuotationDirectory,
	dispatcher interfaces.IRenderJobDispatcher,
	auditLog interfaces.IAuditLogSink,
	expectedModelID string,
) *TriggerRenderUseCase {
	return &TriggerRenderUseCase{
		directory:       directory,
		dispatcher:      dispatcher,
		auditLog:        auditLog,
		expectedModelID: expectedModelID,
	}
}

// Trigger validates the event, resolves the configuration set and processes
// each configuration sequentially. Per-configuration failures are recorded in
// the outcome and never abort the batch; a non-nil error means the request
// itself was rejected (validation failure, or an explicitly named
// configuration that does not exist).
func (u *TriggerRenderUseCase) Trigger(ctx context.Context, event entities.TriggerEvent) (entities.TriggerOutcome, error) {
	log.Printf("[trigger][usecase] start kind=%s quotation_id=%s configuration_id=%s", event.Kind, event.QuotationID, event.ConfigurationID)

	if event.QuotationID == "" {
		return entities.TriggerOutcome{}, ErrMissingQuotationID
	}
	if u.directory == nil {
		return entities.TriggerOutcome{}, errors.New("quotation directory not configured")
	}
	if u.dispatcher == nil {
		return entities.TriggerOutcome{}, errors.New("render job dispatcher not configured")
	}

	// Resolution doubles as validation: a rejected event must not reach the
	// cleanup below, which mutates remote state.
	configurationIDs, err := u.resolveConfigurations(ctx, event.QuotationID, event.ConfigurationID)
	if err != nil {
		log.Printf("[trigger][usecase] resolve failed quotation_id=%s err=%v", event.QuotationID, err)
		return entities.TriggerOutcome{}, err
	}
	log.Printf("[trigger][usecase] resolved quotation_id=%s configurations=%d", event.QuotationID, len(configurationIDs))

	if event.IsRevision() && event.SourceQuotationID != "" {
		u.revisionCleanup(ctx, event)
	}

	outcome := entities.TriggerOutcome{QuotationID: event.QuotationID}
	for _, configurationID := range configurationIDs {
		result, notFound := u.processConfiguration(ctx, event.QuotationID, configurationID)
		if notFound != nil && event.ConfigurationID != "" {
			// The caller named this exact configuration, so its absence is a
			// request-level failure, not a batch entry.
			return entities.TriggerOutcome{}, notFound
		}
		outcome.Results = append(outcome.Results, result)
	}

	log.Printf("[trigger][usecase] done quotation_id=%s configurations=%d failed=%t", event.QuotationID, len(outcome.Results), outcome.Failed())
	return outcome, nil
}

// processConfiguration runs the FetchConfig -> CheckModel -> Reconcile ->
// Dispatch -> Log chain for one configuration. Failures are captured in the
// result so siblings keep processing; the extra ErrConfigurationNotFound
// return lets the caller escalate a 404 when the configuration was named
// explicitly in the request.
func (u *TriggerRenderUseCase) processConfiguration(ctx context.Context, quotationID, configurationID string) (entities.ConfigurationResult, error) {
	result := entities.ConfigurationResult{ConfigurationID: configurationID}

	cfg, err := u.directory.OpenConfiguration(ctx, configurationID)
	if err != nil {
		var notFound error
		if errors.Is(err, interfaces.ErrNotFound) {
			result.Error = fmt.Sprintf("Failed to trigger QFS job for configuration %s: configuration not found", configurationID)
			notFound = fmt.Errorf("%w: %s", ErrConfigurationNotFound, configurationID)
		} else {
			result.Error = fmt.Sprintf("Failed to trigger QFS job for configuration %s: %v", configurationID, err)
		}
		log.Printf("[trigger][usecase] fetch failed configuration_id=%s err=%v", configurationID, err)
		u.audit(ctx, quotationID, result.Error)
		return result, notFound
	}
	result.Code = cfg.Code

	if cfg.ConfigurationModelID != u.expectedModelID {
		result.ModelMismatch = true
		result.Error = fmt.Sprintf("Configuration %s skipped: model %s does not match", cfg.Code, cfg.ConfigurationModelID)
		log.Printf("[trigger][usecase] model mismatch configuration_id=%s model_id=%s expected=%s", configurationID, cfg.ConfigurationModelID, u.expectedModelID)
		u.audit(ctx, quotationID, result.Error)
		return result, nil
	}

	u.removeStaleOutput(ctx, quotationID, cfg.DrawingFileName())

	dispatch, err := u.dispatcher.Dispatch(ctx, cfg, quotationID)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to trigger QFS job for configuration %s: %v", cfg.Code, err)
		log.Printf("[trigger][usecase] dispatch failed configuration_id=%s err=%v", configurationID, err)
		u.audit(ctx, quotationID, result.Error)
		return result, nil
	}
	if !dispatch.Accepted {
		result.Error = fmt.Sprintf("Failed to trigger QFS job for configuration %s: status %d %s", cfg.Code, dispatch.StatusCode, dispatch.Message)
		log.Printf("[trigger][usecase] dispatch rejected configuration_id=%s status=%d", configurationID, dispatch.StatusCode)
		u.audit(ctx, quotationID, result.Error)
		return result, nil
	}

	result.Dispatched = true
	log.Printf("[trigger][usecase] dispatched configuration_id=%s code=%s", configurationID, cfg.Code)
	u.audit(ctx, quotationID, fmt.Sprintf("Triggered QFS job for configuration %s", cfg.Code))
	return result, nil
}

// revisionCleanup purges drawings carried over from the source revision and
// resets the new quotation's audit log so the rerun starts from a clean
// slate. Cleanup is best-effort: failures are logged and never block the run.
func (u *TriggerRenderUseCase) revisionCleanup(ctx context.Context, event entities.TriggerEvent) {
	log.Printf("[trigger][usecase] revision cleanup source_quotation_id=%s quotation_id=%s", event.SourceQuotationID, event.QuotationID)

	sourceIDs, err := u.resolveConfigurations(ctx, event.SourceQuotationID, "")
	if err != nil {
		log.Printf("[trigger][usecase] revision cleanup resolve failed source_quotation_id=%s err=%v", event.SourceQuotationID, err)
		sourceIDs = nil
	}

	for _, configurationID := range sourceIDs {
		cfg, err := u.directory.GetConfiguration(ctx, configurationID)
		if err != nil {
			log.Printf("[trigger][usecase] revision cleanup fetch failed configuration_id=%s err=%v", configurationID, err)
			continue
		}
		u.removeStaleOutput(ctx, event.QuotationID, cfg.DrawingFileName())
	}

	if u.auditLog != nil {
		if err := u.auditLog.Clear(ctx, event.QuotationID); err != nil {
			log.Printf("[trigger][usecase] audit log clear failed quotation_id=%s err=%v", event.QuotationID, err)
		}
	}
}

// audit appends to the quotation's operator log when a sink is wired. Sink
// errors are logged and swallowed: observability must not fail the workflow.
func (u *TriggerRenderUseCase) audit(ctx context.Context, quotationID, message string) {
	if u.auditLog == nil {
		return
	}
	if err := u.auditLog.Append(ctx, quotationID, message); err != nil {
		log.Printf("[trigger][usecase] audit log append failed quotation_id=%s err=%v", quotationID, err)
	}
}
