package qfs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
)

const (
	defaultJobsEndpoint = "https://qfs.dynamaker.com/jobs"
	defaultTask         = "generate-pdf"

	apiKeyHeader = "qfs-api-key"
)

var ErrMissingQfsAPIKey = errors.New("missing QFS_API_KEY")
var ErrMissingCallbackURL = errors.New("missing QFS_CALLBACK_URL")

// Dispatcher submits render jobs to the QFS jobs endpoint. Authentication is
// a static service-to-service API key, distinct from the platform's OAuth
// token. One attempt per job: QFS either accepts synchronously and calls
// back later, or the rejection is surfaced to the caller as-is.

type Dispatcher struct {
	endpoint      string
	apiKey        string
	applicationID string
	task          string
	environment   string
	callbackURL   string
	http          *http.Client
}

var _ interfaces.IRenderJobDispatcher = (*Dispatcher)(nil)

type Config struct {
	Endpoint      string
	APIKey        string
	ApplicationID string
	Task          string
	Environment   string
	CallbackURL   string
	HTTPClient    *http.Client
}

func NewDispatcher(cfg Config) (*Dispatcher, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingQfsAPIKey
	}
	if cfg.CallbackURL == "" {
		return nil, ErrMissingCallbackURL
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultJobsEndpoint
	}
	if cfg.Task == "" {
		cfg.Task = defaultTask
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Dispatcher{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		applicationID: cfg.ApplicationID,
		task:          cfg.Task,
		environment:   cfg.Environment,
		callbackURL:   strings.TrimRight(cfg.CallbackURL, "?"),
		http:          cfg.HTTPClient,
	}, nil
}

// NewDispatcherFromEnv creates a dispatcher from environment variables.
//
// Supported env vars:
//   - QFS_JOBS_ENDPOINT (default: https://qfs.dynamaker.com/jobs)
//   - QFS_API_KEY (required)
//   - QFS_CALLBACK_URL (required; the public URL of this service's callback)
//   - QFS_TASK (default: generate-pdf)
//   - QFS_ENVIRONMENT
//   - DYNAMAKER_APPLICATION_ID
func NewDispatcherFromEnv() (*Dispatcher, error) {
	return NewDispatcher(Config{
		Endpoint:      os.Getenv("QFS_JOBS_ENDPOINT"),
		APIKey:        os.Getenv("QFS_API_KEY"),
		ApplicationID: os.Getenv("DYNAMAKER_APPLICATION_ID"),
		Task:          os.Getenv("QFS_TASK"),
		Environment:   os.Getenv("QFS_ENVIRONMENT"),
		CallbackURL:   os.Getenv("QFS_CALLBACK_URL"),
	})
}

// Dispatch posts one render job embedding the full configurator payload. The
// callback URL carries the configuration and quotation ids as query
// correlation because QFS is stateless and echoes them back verbatim.
func (d *Dispatcher) Dispatch(ctx context.Context, configuration entities.Configuration, quotationID string) (entities.RenderJobDispatch, error) {
	job := entities.RenderJobRequest{
		ApplicationID: d.applicationID,
		Task:          d.task,
		Environment:   d.environment,
		Configuration: configuration.Payload,
		CallbackURL:   d.correlatedCallbackURL(configuration.ID, quotationID),
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return entities.RenderJobDispatch{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return entities.RenderJobDispatch{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, d.apiKey)

	log.Printf("[qfs][dispatcher] job start configuration_id=%s quotation_id=%s task=%s", configuration.ID, quotationID, d.task)
	res, err := d.http.Do(req)
	if err != nil {
		return entities.RenderJobDispatch{}, fmt.Errorf("qfs dispatch: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return entities.RenderJobDispatch{}, fmt.Errorf("qfs dispatch: reading response: %w", err)
	}

	dispatch := entities.RenderJobDispatch{
		Accepted:   res.StatusCode >= 200 && res.StatusCode <= 299,
		StatusCode: res.StatusCode,
		Message:    responseMessage(body),
	}
	log.Printf("[qfs][dispatcher] job answered configuration_id=%s status=%d accepted=%t", configuration.ID, dispatch.StatusCode, dispatch.Accepted)
	return dispatch, nil
}

func (d *Dispatcher) correlatedCallbackURL(configurationID, quotationID string) string {
	query := url.Values{"cid": {configurationID}, "qid": {quotationID}}
	separator := "?"
	if strings.Contains(d.callbackURL, "?") {
		separator = "&"
	}
	return d.callbackURL + separator + query.Encode()
}

// responseMessage pulls the message field out of a QFS answer, falling back
// to the raw body for non-JSON responses.
func responseMessage(body []byte) string {
	var answer struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &answer); err == nil && answer.Message != "" {
		return answer.Message
	}
	return strings.TrimSpace(string(body))
}
