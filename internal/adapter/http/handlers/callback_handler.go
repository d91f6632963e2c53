package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/dto/request"
	response "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/dto/response"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/pkg"
)

// CallbackHandler receives the asynchronous render result from QFS.

type CallbackHandler struct {
	usecase usecase.ICallbackUseCase
}

func NewCallbackHandler(uc usecase.ICallbackUseCase) *CallbackHandler {
	return &CallbackHandler{usecase: uc}
}

// HandleCallback ingests either callback variant: correlation ids in the
// query string with the file payload as raw body, or a self-contained JSON
// body carrying ids, file and message together.
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	result, appErr := decodeCallback(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] start quotation_id=%s configuration_id=%s success=%t", result.QuotationID, result.ConfigurationID, result.Success)

	outcome, err := h.usecase.Ingest(c.Request.Context(), result)
	if err != nil {
		log.Printf("[callback][handler] ingest failed quotation_id=%s err=%v", result.QuotationID, err)
		appErr := mapCallbackError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[callback][handler] success quotation_id=%s file_name=%s", outcome.QuotationID, outcome.FileName)
	c.JSON(http.StatusOK, response.FromCallbackOutcome(outcome))
}

func decodeCallback(c *gin.Context) (entities.RenderJobResult, *pkg.AppError) {
	if c.Query("cid") != "" || c.Query("qid") != "" {
		body, err := c.GetRawData()
		if err != nil {
			log.Printf("[callback][handler] reading body failed err=%v", err)
			return entities.RenderJobResult{}, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read callback body", http.StatusBadRequest)
		}
		return request.RenderJobResultFromQuery(c.Query("cid"), c.Query("qid"), c.Query("success"), c.Query("message"), body), nil
	}

	var payload request.CallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[callback][handler] invalid payload err=%v", err)
		return entities.RenderJobResult{}, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid callback payload", http.StatusBadRequest)
	}
	return payload.ToRenderJobResult(), nil
}

func mapCallbackError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCorrelation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing configurationId and/or quotationId", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRenderJobFailed):
		return pkg.NewDomainError("RENDER_JOB_FAILED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRenderFile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Render result carries no file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Configuration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUploadFailed):
		return pkg.NewDomainError("UPLOAD_FAILED", "Failed to attach drawing to quotation", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
