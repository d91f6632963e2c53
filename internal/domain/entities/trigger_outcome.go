package entities

// ConfigurationResult is the per-configuration outcome of one trigger run.
//
// Code is the human-readable configuration code when the configuration could
// be fetched; otherwise the raw id is used so the operator can still tell
// entries apart.
type ConfigurationResult struct {
	ConfigurationID string `json:"configuration_id"`
	Code            string `json:"code,omitempty"`
	Dispatched      bool   `json:"dispatched"`
	ModelMismatch   bool   `json:"model_mismatch,omitempty"`
	Error           string `json:"error,omitempty"`
}

// TriggerOutcome aggregates a trigger run. An empty Results slice is a
// success: zero configurations means there was nothing to render.
type TriggerOutcome struct {
	QuotationID string                `json:"quotation_id"`
	Results     []ConfigurationResult `json:"results"`
}

// Failed reports whether any configuration in the run failed. Model
// mismatches count as failures here; whether they are a client error or a
// server error is decided at the HTTP layer.
func (o TriggerOutcome) Failed() bool {
	for _, r := range o.Results {
		if r.Error != "" {
			return true
		}
	}
	return false
}

// OnlyModelMismatches reports whether every failure in the run was a model
// mismatch, meaning the event was simply not relevant to this integration.
func (o TriggerOutcome) OnlyModelMismatches() bool {
	any := false
	for _, r := range o.Results {
		if r.Error == "" {
			continue
		}
		if !r.ModelMismatch {
			return false
		}
		any = true
	}
	return any
}

// ErrorMessages collects the per-configuration error messages for the
// aggregate failure response.
func (o TriggerOutcome) ErrorMessages() []string {
	var msgs []string
	for _, r := range o.Results {
		if r.Error != "" {
			msgs = append(msgs, r.Error)
		}
	}
	return msgs
}

// CallbackOutcome is the result of ingesting one render callback.
type CallbackOutcome struct {
	QuotationID     string `json:"quotation_id"`
	ConfigurationID string `json:"configuration_id"`
	FileName        string `json:"file_name"`
}
