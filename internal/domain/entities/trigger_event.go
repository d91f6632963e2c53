package entities

// TriggerEventKind tags the inbound shapes that can start a render run.
//
// The webhook sender wraps its payload in a topic envelope, the quotation
// dialog and direct API callers post flat bodies. All of them are decoded
// once at the HTTP boundary into a TriggerEvent so downstream code never
// inspects raw payload fields again.

type TriggerEventKind string

const (
	TriggerManualDialogRequest       TriggerEventKind = "manual-dialog-request"
	TriggerWebhookConfigurationAdded TriggerEventKind = "webhook-configuration-added"
	TriggerWebhookRevisionMade       TriggerEventKind = "webhook-revision-made"
	TriggerDirectAPICall             TriggerEventKind = "direct-api-call"
)

// TriggerEvent is the canonical render trigger.
//
// QuotationID is always required. ConfigurationID narrows the run to a single
// configuration; when empty the whole quotation is processed. For
// revision-made events SourceQuotationID identifies the prior revision whose
// generated drawings must be purged under the new quotation id.

type TriggerEvent struct {
	Kind              TriggerEventKind `json:"kind"`
	QuotationID       string           `json:"quotation_id"`
	ConfigurationID   string           `json:"configuration_id,omitempty"`
	SourceQuotationID string           `json:"source_quotation_id,omitempty"`
}

func (e TriggerEvent) IsRevision() bool {
	return e.Kind == TriggerWebhookRevisionMade
}
