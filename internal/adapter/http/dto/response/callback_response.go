package response

import "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"

type CallbackResponse struct {
	Message         string `json:"message"`
	QuotationID     string `json:"quotation_id"`
	ConfigurationID string `json:"configuration_id"`
	FileName        string `json:"file_name"`
}

func FromCallbackOutcome(o entities.CallbackOutcome) CallbackResponse {
	return CallbackResponse{
		Message:         "Drawing attached to quotation",
		QuotationID:     o.QuotationID,
		ConfigurationID: o.ConfigurationID,
		FileName:        o.FileName,
	}
}
