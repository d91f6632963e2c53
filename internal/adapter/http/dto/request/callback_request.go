package request

import "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"

// CallbackRequest is the JSON-body variant of the render callback.
//
// Success is a pointer so an absent field can be told apart from an explicit
// false; historical senders omit it on success.
type CallbackRequest struct {
	Success         *bool         `json:"success"`
	File            *CallbackFile `json:"file"`
	Message         string        `json:"message"`
	QuotationID     string        `json:"quotationId"`
	ConfigurationID string        `json:"configurationId"`
}

type CallbackFile struct {
	Body     string `json:"body"`
	FileName string `json:"fileName"`
}

func (r CallbackRequest) ToRenderJobResult() entities.RenderJobResult {
	result := entities.RenderJobResult{
		Success:         r.Success == nil || *r.Success,
		Message:         r.Message,
		QuotationID:     r.QuotationID,
		ConfigurationID: r.ConfigurationID,
	}
	if r.File != nil {
		result.File = &entities.RenderJobFile{Body: r.File.Body, FileName: r.File.FileName}
	}
	return result
}

// RenderJobResultFromQuery builds the result for the query-correlated
// callback variant, where cid/qid/success/message arrive as query parameters
// and the request body is the rendered file payload itself.
func RenderJobResultFromQuery(cid, qid, success, message string, body []byte) entities.RenderJobResult {
	result := entities.RenderJobResult{
		Success:         success != "false",
		Message:         message,
		QuotationID:     qid,
		ConfigurationID: cid,
	}
	if result.Success && len(body) > 0 {
		result.File = &entities.RenderJobFile{Body: string(body)}
	}
	return result
}
