package response

import "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"

type ConfigurationResultResponse struct {
	ConfigurationID string `json:"configuration_id"`
	Code            string `json:"code,omitempty"`
	Dispatched      bool   `json:"dispatched"`
	Error           string `json:"error,omitempty"`
}

type TriggerResponse struct {
	Message     string                        `json:"message"`
	QuotationID string                        `json:"quotation_id"`
	Results     []ConfigurationResultResponse `json:"results"`
}

func FromTriggerOutcome(o entities.TriggerOutcome) TriggerResponse {
	resp := TriggerResponse{
		Message:     "QFS jobs triggered",
		QuotationID: o.QuotationID,
		Results:     make([]ConfigurationResultResponse, 0, len(o.Results)),
	}
	if len(o.Results) == 0 {
		resp.Message = "No configurations to process"
	}
	for _, r := range o.Results {
		resp.Results = append(resp.Results, ConfigurationResultResponse{
			ConfigurationID: r.ConfigurationID,
			Code:            r.Code,
			Dispatched:      r.Dispatched,
			Error:           r.Error,
		})
	}
	return resp
}
