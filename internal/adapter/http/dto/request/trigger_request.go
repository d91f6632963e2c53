package request

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
)

const (
	TopicConfigurationAdded = "quotation.configurationadded"
	TopicRevisionMade       = "quotation.revisionmade"

	// SourceDialog marks triggers fired from the quotation UI dialog; they
	// are processed like direct API calls but tagged for the audit trail.
	SourceDialog = "dialog"
)

var (
	ErrMissingQuotationID = errors.New("missing quotationId in request body")
	ErrMissingContent     = errors.New("missing content for topic-wrapped payload")
	ErrUnknownTopic       = errors.New("unknown webhook topic")
	ErrInvalidIdentifier  = errors.New("identifier is not a valid GUID")
)

// WebhookContent is the inner payload of a topic-wrapped webhook event.
type WebhookContent struct {
	QuotationID       string `json:"quotationId"`
	ConfigurationID   string `json:"configurationId"`
	SourceQuotationID string `json:"sourceQuotationId"`
}

// TriggerRequest covers every inbound trigger shape: the webhook sender
// wraps ids in a topic envelope, the dialog and direct API callers post them
// flat. ToTriggerEvent collapses the duck-typed shapes into the canonical
// event exactly once, so nothing downstream inspects field paths again.
type TriggerRequest struct {
	QuotationID     string          `json:"quotationId"`
	ConfigurationID string          `json:"configurationId"`
	Source          string          `json:"source"`
	Topic           string          `json:"topic"`
	Content         *WebhookContent `json:"content"`
}

func (r TriggerRequest) ToTriggerEvent() (entities.TriggerEvent, error) {
	event := entities.TriggerEvent{}

	if r.Topic != "" {
		if r.Content == nil {
			return entities.TriggerEvent{}, ErrMissingContent
		}
		switch r.Topic {
		case TopicConfigurationAdded:
			event.Kind = entities.TriggerWebhookConfigurationAdded
		case TopicRevisionMade:
			event.Kind = entities.TriggerWebhookRevisionMade
		default:
			return entities.TriggerEvent{}, fmt.Errorf("%w: %s", ErrUnknownTopic, r.Topic)
		}
		event.QuotationID = r.Content.QuotationID
		event.ConfigurationID = r.Content.ConfigurationID
		event.SourceQuotationID = r.Content.SourceQuotationID
	} else {
		if r.Source == SourceDialog {
			event.Kind = entities.TriggerManualDialogRequest
		} else {
			event.Kind = entities.TriggerDirectAPICall
		}
		event.QuotationID = r.QuotationID
		event.ConfigurationID = r.ConfigurationID
	}

	if event.QuotationID == "" {
		return entities.TriggerEvent{}, ErrMissingQuotationID
	}
	for _, id := range []string{event.QuotationID, event.ConfigurationID, event.SourceQuotationID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return entities.TriggerEvent{}, fmt.Errorf("%w: %s", ErrInvalidIdentifier, id)
		}
	}
	return event, nil
}
