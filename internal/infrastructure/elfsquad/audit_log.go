package elfsquad

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
)

const logTimestampLayout = "02/01/06 15:04:05"

// AuditLogSink keeps a rolling, most-recent-first text log on a quotation
// record, backed by a single quotation property value. The property store
// has no in-place update, so every write is a delete of the current record
// followed by an insert of the replacement.

type AuditLogSink struct {
	directory  interfaces.IQuotationDirectory
	propertyID string
	now        func() time.Time
}

var _ interfaces.IAuditLogSink = (*AuditLogSink)(nil)

func NewAuditLogSink(directory interfaces.IQuotationDirectory, propertyID string) *AuditLogSink {
	return &AuditLogSink{directory: directory, propertyID: propertyID, now: time.Now}
}

// NewAuditLogSinkFromEnv returns a sink bound to ELFSQUAD_LOGS_PROPERTY_ID,
// or nil when the property id is not configured. A nil sink disables audit
// logging without changing the workflow.
func NewAuditLogSinkFromEnv(directory interfaces.IQuotationDirectory) *AuditLogSink {
	propertyID := os.Getenv("ELFSQUAD_LOGS_PROPERTY_ID")
	if propertyID == "" {
		log.Printf("[elfsquad][auditlog] ELFSQUAD_LOGS_PROPERTY_ID not set; audit logging disabled")
		return nil
	}
	return NewAuditLogSink(directory, propertyID)
}

func (s *AuditLogSink) Append(ctx context.Context, quotationID, message string) error {
	timestamp := s.now().UTC().Format(logTimestampLayout)
	entry := fmt.Sprintf("%s UTC: %s\n", timestamp, message)
	return s.rewrite(ctx, quotationID, func(existing string) string {
		return entry + existing
	})
}

func (s *AuditLogSink) Clear(ctx context.Context, quotationID string) error {
	return s.rewrite(ctx, quotationID, func(string) string {
		return ""
	})
}

// rewrite replaces the quotation's log value with transform(current). At
// most one active value exists per quotation; if one is found it is deleted
// before the new value is inserted.
func (s *AuditLogSink) rewrite(ctx context.Context, quotationID string, transform func(existing string) string) error {
	values, err := s.directory.ListQuotationPropertyValues(ctx, quotationID, s.propertyID)
	if err != nil {
		return fmt.Errorf("reading quotation log %s: %w", quotationID, err)
	}

	existing := ""
	if len(values) > 0 {
		existing = values[0].Value
		if err := s.directory.DeleteQuotationPropertyValue(ctx, values[0].ID); err != nil {
			return fmt.Errorf("replacing quotation log %s: %w", quotationID, err)
		}
	}

	return s.directory.CreateQuotationPropertyValue(ctx, entities.QuotationPropertyValue{
		EntityID:         quotationID,
		EntityPropertyID: s.propertyID,
		Value:            transform(existing),
	})
}
