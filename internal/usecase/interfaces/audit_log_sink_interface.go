package interfaces

import "context"

// IAuditLogSink abstracts the rolling operator log stored on a quotation
// record. Audit logging is an optional capability: use cases tolerate a nil
// sink and sink errors never fail the surrounding workflow.
//
//go:generate mockgen -source=audit_log_sink_interface.go -destination=mocks/audit_log_sink_interface_mock.go -package=mocks
type IAuditLogSink interface {
	// Append prepends a timestamped message to the quotation's log.
	Append(ctx context.Context, quotationID, message string) error

	// Clear resets the quotation's log to an empty value.
	Clear(ctx context.Context, quotationID string) error
}
