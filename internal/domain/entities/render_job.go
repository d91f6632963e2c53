package entities

import "encoding/json"

// RenderJobRequest is the body posted to the QFS jobs endpoint.
//
// The render service is stateless: CallbackURL carries the quotation and
// configuration ids as query correlation and QFS returns them verbatim when
// it calls back with the result.
type RenderJobRequest struct {
	ApplicationID string          `json:"applicationId"`
	Task          string          `json:"task"`
	Environment   string          `json:"environment"`
	Configuration json.RawMessage `json:"configuration"`
	CallbackURL   string          `json:"callbackUrl"`
}

// RenderJobDispatch is the synchronous accept/reject answer of the jobs
// endpoint. Any non-2xx response is a rejected dispatch, not an error: the
// trigger run records it and moves on to the next configuration.
type RenderJobDispatch struct {
	Accepted   bool   `json:"accepted"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
}

// RenderJobFile is the rendered document carried by a callback. Body holds
// the bytes either raw or base64-encoded; the sender gives no encoding
// signal, so ingestion has to detect it.
type RenderJobFile struct {
	Body     string `json:"body"`
	FileName string `json:"fileName,omitempty"`
}

// RenderJobResult is the canonical asynchronous render outcome, decoded at
// the HTTP boundary from either callback variant (JSON body or query
// correlation with the file bytes as raw body).
type RenderJobResult struct {
	Success         bool           `json:"success"`
	File            *RenderJobFile `json:"file,omitempty"`
	Message         string         `json:"message,omitempty"`
	QuotationID     string         `json:"quotationId"`
	ConfigurationID string         `json:"configurationId"`
}
