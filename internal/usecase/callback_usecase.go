package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
)

var (
	ErrMissingCorrelation = errors.New("missing configurationId and/or quotationId")
	ErrRenderJobFailed    = errors.New("render job failed")
	ErrMissingRenderFile  = errors.New("render result carries no file")
	ErrUploadFailed       = errors.New("failed to attach drawing to quotation")
)

// The render service gives no content-type signal for the file body, so
// encoding is inferred: a payload made up entirely of base64 alphabet
// characters is treated as base64. Raw PDF bytes always contain characters
// outside that alphabet ("%PDF-" alone has two), so real drawings pass
// through untouched.
var base64BodyPattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// ICallbackUseCase ingests the asynchronous render result and attaches the
// produced drawing to the owning quotation.

type ICallbackUseCase interface {
	Ingest(ctx context.Context, result entities.RenderJobResult) (entities.CallbackOutcome, error)
}

type CallbackUseCase struct {
	directory interfaces.IQuotationDirectory
	auditLog  interfaces.IAuditLogSink
}

var _ ICallbackUseCase = (*CallbackUseCase)(nil)

// NewCallbackUseCase wires the ingestor. auditLog may be nil.
func NewCallbackUseCase(directory interfaces.IQuotationDirectory, auditLog interfaces.IAuditLogSink) *CallbackUseCase {
	return &CallbackUseCase{directory: directory, auditLog: auditLog}
}

// Ingest resolves the owning configuration to derive the canonical drawing
// name, decodes the file body and uploads it as a quotation attachment. The
// stored name must match what reconciliation searches for later, which is
// why the name is derived from the configuration code rather than taken from
// the callback payload.
func (u *CallbackUseCase) Ingest(ctx context.Context, result entities.RenderJobResult) (entities.CallbackOutcome, error) {
	log.Printf("[callback][usecase] ingest start quotation_id=%s configuration_id=%s success=%t", result.QuotationID, result.ConfigurationID, result.Success)

	if result.QuotationID == "" || result.ConfigurationID == "" {
		return entities.CallbackOutcome{}, ErrMissingCorrelation
	}
	if u.directory == nil {
		return entities.CallbackOutcome{}, errors.New("quotation directory not configured")
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = "no failure message supplied"
		}
		log.Printf("[callback][usecase] render failed quotation_id=%s configuration_id=%s message=%s", result.QuotationID, result.ConfigurationID, message)
		u.audit(ctx, result.QuotationID, fmt.Sprintf("QFS job failed for configuration %s: %s", result.ConfigurationID, message))
		return entities.CallbackOutcome{}, fmt.Errorf("%w: %s", ErrRenderJobFailed, message)
	}

	if result.File == nil || result.File.Body == "" {
		return entities.CallbackOutcome{}, ErrMissingRenderFile
	}

	cfg, err := u.directory.GetConfiguration(ctx, result.ConfigurationID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.CallbackOutcome{}, fmt.Errorf("%w: %s", ErrConfigurationNotFound, result.ConfigurationID)
		}
		return entities.CallbackOutcome{}, fmt.Errorf("fetching configuration %s: %w", result.ConfigurationID, err)
	}

	fileName := cfg.DrawingFileName()
	content := decodeRenderBody(result.File.Body)

	if err := u.directory.UploadQuotationFile(ctx, result.QuotationID, fileName, content); err != nil {
		log.Printf("[callback][usecase] upload failed quotation_id=%s file_name=%s err=%v", result.QuotationID, fileName, err)
		u.audit(ctx, result.QuotationID, fmt.Sprintf("Failed to attach drawing %s: %v", fileName, err))
		return entities.CallbackOutcome{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	log.Printf("[callback][usecase] ingest success quotation_id=%s file_name=%s bytes=%d", result.QuotationID, fileName, len(content))
	u.audit(ctx, result.QuotationID, fmt.Sprintf("Attached drawing %s", fileName))

	return entities.CallbackOutcome{
		QuotationID:     result.QuotationID,
		ConfigurationID: result.ConfigurationID,
		FileName:        fileName,
	}, nil
}

func (u *CallbackUseCase) audit(ctx context.Context, quotationID, message string) {
	if u.auditLog == nil {
		return
	}
	if err := u.auditLog.Append(ctx, quotationID, message); err != nil {
		log.Printf("[callback][usecase] audit log append failed quotation_id=%s err=%v", quotationID, err)
	}
}

// decodeRenderBody returns the file bytes, decoding base64 when the whole
// payload matches the base64 alphabet. A payload that matches but fails to
// decode is passed through raw rather than dropped.
func decodeRenderBody(body string) []byte {
	if base64BodyPattern.MatchString(body) {
		if decoded, err := base64.StdEncoding.DecodeString(body); err == nil {
			return decoded
		}
	}
	return []byte(body)
}
