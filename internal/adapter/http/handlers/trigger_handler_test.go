package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/handlers/mocks"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase"
)

const (
	testQuotationID     = "0b9a3cd1-6a5f-4f0e-9d2b-0c1f6a1d9e01"
	testConfigurationID = "4f2f64cf-1d12-4f0a-8c5a-2e9b7c3d1a02"
)

func newTriggerRouter(uc *mocks.MockITriggerRenderUseCase) *gin.Engine {
	h := NewTriggerHandler(uc)
	r := gin.New()
	r.POST("/v1/render/jobs", h.TriggerRender)
	r.POST("/v1/webhooks/elfsquad", h.HandleWebhook)
	return r
}

func TestTriggerHandler_TriggerRender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newTriggerRouter(mocks.NewMockITriggerRenderUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quotation id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newTriggerRouter(mocks.NewMockITriggerRenderUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"configurationId":"`+testConfigurationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quotation configuration mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(entities.TriggerOutcome{}, usecase.ErrQuotationConfigMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`","configurationId":"`+testConfigurationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("named configuration not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), gomock.Any()).
			Return(entities.TriggerOutcome{}, fmt.Errorf("%w: %s", usecase.ErrConfigurationNotFound, testConfigurationID))

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`","configurationId":"`+testConfigurationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
		var body struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "CONFIGURATION_NOT_FOUND" {
			t.Fatalf("unexpected error code %q", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), entities.TriggerEvent{
			Kind:        entities.TriggerDirectAPICall,
			QuotationID: testQuotationID,
		}).Return(entities.TriggerOutcome{
			QuotationID: testQuotationID,
			Results: []entities.ConfigurationResult{
				{ConfigurationID: testConfigurationID, Code: "C1", Dispatched: true},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("empty configuration set is success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(entities.TriggerOutcome{QuotationID: testQuotationID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["message"] != "No configurations to process" {
			t.Fatalf("unexpected message %v", body["message"])
		}
	})

	t.Run("pure model mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(entities.TriggerOutcome{
			QuotationID: testQuotationID,
			Results: []entities.ConfigurationResult{
				{ConfigurationID: testConfigurationID, Code: "C1", ModelMismatch: true, Error: "Configuration C1 skipped: model m-2 does not match"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dispatch failure maps to 500 with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), gomock.Any()).Return(entities.TriggerOutcome{
			QuotationID: testQuotationID,
			Results: []entities.ConfigurationResult{
				{ConfigurationID: testConfigurationID, Code: "C1", Error: "Failed to trigger QFS job for configuration C1: status 503 overloaded"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/render/jobs", bytes.NewBufferString(`{"quotationId":"`+testQuotationID+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body struct {
			Errors []string `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Errors) != 1 || body.Errors[0] != "Failed to trigger QFS job for configuration C1: status 503 overloaded" {
			t.Fatalf("unexpected errors %v", body.Errors)
		}
	})
}

func TestTriggerHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("topic wrapped event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITriggerRenderUseCase(ctrl)
		r := newTriggerRouter(uc)

		uc.EXPECT().Trigger(gomock.Any(), entities.TriggerEvent{
			Kind:            entities.TriggerWebhookConfigurationAdded,
			QuotationID:     testQuotationID,
			ConfigurationID: testConfigurationID,
		}).Return(entities.TriggerOutcome{QuotationID: testQuotationID}, nil)

		payload := `{"topic":"quotation.configurationadded","content":{"quotationId":"` + testQuotationID + `","configurationId":"` + testConfigurationID + `"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/elfsquad", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newTriggerRouter(mocks.NewMockITriggerRenderUseCase(ctrl))

		payload := `{"topic":"quotation.deleted","content":{"quotationId":"` + testQuotationID + `"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/elfsquad", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
