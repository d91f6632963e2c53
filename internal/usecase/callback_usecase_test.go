package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
	mock_interfaces "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces/mocks"
)

func TestCallbackUseCase_Validation(t *testing.T) {
	t.Run("missing correlation", func(t *testing.T) {
		uc := NewCallbackUseCase(nil, nil)
		_, err := uc.Ingest(context.Background(), entities.RenderJobResult{Success: true})
		if !errors.Is(err, ErrMissingCorrelation) {
			t.Fatalf("expected ErrMissingCorrelation, got %v", err)
		}
	})

	t.Run("missing file on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		uc := NewCallbackUseCase(directory, nil)

		_, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success: true, QuotationID: "q-1", ConfigurationID: "c-1",
		})
		if !errors.Is(err, ErrMissingRenderFile) {
			t.Fatalf("expected ErrMissingRenderFile, got %v", err)
		}
	})
}

func TestCallbackUseCase_RenderFailureShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
	auditLog := mock_interfaces.NewMockIAuditLogSink(ctrl)
	uc := NewCallbackUseCase(directory, auditLog)

	// No GetConfiguration or UploadQuotationFile expectations: the failure
	// path must never reach the upload.
	auditLog.EXPECT().Append(gomock.Any(), "q-1", gomock.Any()).Return(nil)

	_, err := uc.Ingest(context.Background(), entities.RenderJobResult{
		Success:         false,
		Message:         "rendering crashed",
		QuotationID:     "q-1",
		ConfigurationID: "c-1",
	})
	if !errors.Is(err, ErrRenderJobFailed) {
		t.Fatalf("expected ErrRenderJobFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "rendering crashed") {
		t.Fatalf("expected supplied message to surface, got %q", err.Error())
	}
}

func TestCallbackUseCase_IngestSuccess(t *testing.T) {
	t.Run("base64 body is decoded before upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		uc := NewCallbackUseCase(directory, nil)

		pdf := []byte("%PDF-1.7 fake drawing")
		encoded := base64.StdEncoding.EncodeToString(pdf)

		directory.EXPECT().GetConfiguration(gomock.Any(), "c-1").Return(entities.Configuration{ID: "c-1", Code: "C1"}, nil)
		directory.EXPECT().UploadQuotationFile(gomock.Any(), "q-1", "C1.pdf", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, content []byte) error {
				if !bytes.Equal(content, pdf) {
					t.Fatalf("expected decoded pdf bytes, got %q", content)
				}
				return nil
			})

		outcome, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success:         true,
			File:            &entities.RenderJobFile{Body: encoded},
			QuotationID:     "q-1",
			ConfigurationID: "c-1",
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if outcome.FileName != "C1.pdf" {
			t.Fatalf("expected canonical file name C1.pdf, got %s", outcome.FileName)
		}
	})

	t.Run("raw pdf body passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		uc := NewCallbackUseCase(directory, nil)

		// "%PDF-" contains characters outside the base64 alphabet, so the
		// heuristic must not attempt a decode.
		raw := "%PDF-1.7 raw body"

		directory.EXPECT().GetConfiguration(gomock.Any(), "c-1").Return(entities.Configuration{ID: "c-1", Code: "C1"}, nil)
		directory.EXPECT().UploadQuotationFile(gomock.Any(), "q-1", "C1.pdf", []byte(raw)).Return(nil)

		_, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success:         true,
			File:            &entities.RenderJobFile{Body: raw},
			QuotationID:     "q-1",
			ConfigurationID: "c-1",
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("supplied file name is ignored in favor of the configuration code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		uc := NewCallbackUseCase(directory, nil)

		directory.EXPECT().GetConfiguration(gomock.Any(), "c-1").Return(entities.Configuration{ID: "c-1", Code: "C1"}, nil)
		directory.EXPECT().UploadQuotationFile(gomock.Any(), "q-1", "C1.pdf", gomock.Any()).Return(nil)

		outcome, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success:         true,
			File:            &entities.RenderJobFile{Body: "%PDF-1.7 x", FileName: "whatever.pdf"},
			QuotationID:     "q-1",
			ConfigurationID: "c-1",
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if outcome.FileName != "C1.pdf" {
			t.Fatalf("expected C1.pdf, got %s", outcome.FileName)
		}
	})
}

func TestCallbackUseCase_Failures(t *testing.T) {
	t.Run("configuration not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		uc := NewCallbackUseCase(directory, nil)

		directory.EXPECT().GetConfiguration(gomock.Any(), "c-1").Return(entities.Configuration{}, interfaces.ErrNotFound)

		_, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success:         true,
			File:            &entities.RenderJobFile{Body: "%PDF-1.7 x"},
			QuotationID:     "q-1",
			ConfigurationID: "c-1",
		})
		if !errors.Is(err, ErrConfigurationNotFound) {
			t.Fatalf("expected ErrConfigurationNotFound, got %v", err)
		}
	})

	t.Run("upload failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIQuotationDirectory(ctrl)
		auditLog := mock_interfaces.NewMockIAuditLogSink(ctrl)
		uc := NewCallbackUseCase(directory, auditLog)

		directory.EXPECT().GetConfiguration(gomock.Any(), "c-1").Return(entities.Configuration{ID: "c-1", Code: "C1"}, nil)
		directory.EXPECT().UploadQuotationFile(gomock.Any(), "q-1", "C1.pdf", gomock.Any()).Return(errors.New("storage unavailable"))
		auditLog.EXPECT().Append(gomock.Any(), "q-1", gomock.Any()).Return(nil)

		_, err := uc.Ingest(context.Background(), entities.RenderJobResult{
			Success:         true,
			File:            &entities.RenderJobFile{Body: "%PDF-1.7 x"},
			QuotationID:     "q-1",
			ConfigurationID: "c-1",
		})
		if !errors.Is(err, ErrUploadFailed) {
			t.Fatalf("expected ErrUploadFailed, got %v", err)
		}
	})
}

func TestDecodeRenderBody(t *testing.T) {
	t.Run("base64", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
		if got := decodeRenderBody(encoded); string(got) != "hello" {
			t.Fatalf("expected decoded bytes, got %q", got)
		}
	})

	t.Run("raw", func(t *testing.T) {
		if got := decodeRenderBody("%PDF-1.7"); string(got) != "%PDF-1.7" {
			t.Fatalf("expected raw passthrough, got %q", got)
		}
	})

	t.Run("base64 alphabet but invalid padding falls back to raw", func(t *testing.T) {
		body := "AAA=AAA"
		if got := decodeRenderBody(body); string(got) != body {
			t.Fatalf("expected raw fallback, got %q", got)
		}
	})
}
