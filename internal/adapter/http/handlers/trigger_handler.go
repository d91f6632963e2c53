package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/dto/request"
	response "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/dto/response"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/pkg"
)

var errInvalidTriggerPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid trigger payload", http.StatusBadRequest)

// TriggerHandler handles HTTP requests that start a render run: the
// quotation webhook, the UI dialog and direct API calls all land here.

type TriggerHandler struct {
	usecase usecase.ITriggerRenderUseCase
}

func NewTriggerHandler(uc usecase.ITriggerRenderUseCase) *TriggerHandler {
	return &TriggerHandler{usecase: uc}
}

// TriggerRender handles the flat manual/direct trigger body
// {quotationId, configurationId?, source?}.
func (h *TriggerHandler) TriggerRender(c *gin.Context) {
	h.trigger(c)
}

// HandleWebhook handles topic-wrapped webhook events
// ({topic, content:{quotationId, configurationId, sourceQuotationId}}).
func (h *TriggerHandler) HandleWebhook(c *gin.Context) {
	h.trigger(c)
}

// trigger decodes any trigger shape into the canonical event and runs the
// workflow. Both routes share it because the decoder dispatches on the
// payload shape, not the path.
func (h *TriggerHandler) trigger(c *gin.Context) {
	var payload request.TriggerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[trigger][handler] invalid payload err=%v", err)
		c.JSON(errInvalidTriggerPayload.HTTPStatus, errInvalidTriggerPayload.ToHTTPError())
		return
	}

	event, err := payload.ToTriggerEvent()
	if err != nil {
		log.Printf("[trigger][handler] event decode failed err=%v", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[trigger][handler] start kind=%s quotation_id=%s", event.Kind, event.QuotationID)

	outcome, err := h.usecase.Trigger(c.Request.Context(), event)
	if err != nil {
		log.Printf("[trigger][handler] failed quotation_id=%s err=%v", event.QuotationID, err)
		appErr := mapTriggerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if outcome.Failed() {
		details := outcome.ErrorMessages()
		if outcome.OnlyModelMismatches() {
			log.Printf("[trigger][handler] model mismatch quotation_id=%s", event.QuotationID)
			appErr := pkg.NewDomainErrorSimple("MODEL_MISMATCH", "Model ID does not match. Flow stopped.", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(details))
			return
		}
		log.Printf("[trigger][handler] dispatch failures quotation_id=%s failures=%d", event.QuotationID, len(details))
		appErr := pkg.NewDomainErrorSimple("QFS_DISPATCH_FAILED", "One or more QFS jobs could not be triggered", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(details))
		return
	}

	log.Printf("[trigger][handler] success quotation_id=%s configurations=%d", event.QuotationID, len(outcome.Results))
	c.JSON(http.StatusOK, response.FromTriggerOutcome(outcome))
}

func mapTriggerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing quotationId", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationConfigMismatch):
		return pkg.NewDomainErrorSimple("QUOTATION_CONFIGURATION_MISMATCH", "Configuration does not belong to quotation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Configuration not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
