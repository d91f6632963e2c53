package elfsquad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
)

const (
	defaultBaseURL       = "https://api.elfsquad.io"
	defaultLoginEndpoint = "https://login.elfsquad.io/oauth2/token"
	apiScope             = "Elfskot.Api"

	// Pages are followed via the server-supplied continuation link; the cap
	// guards against a misbehaving server feeding an endless cursor chain.
	maxPages = 100
)

// Client is a thin authenticated accessor for the Elfsquad data API. The
// bearer token lifecycle (client-credentials exchange, caching, refresh)
// lives entirely inside the injected oauth2 transport.

type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IQuotationDirectory = (*Client)(nil)

// NewClient builds a directory client on top of httpClient, which is
// expected to attach authentication itself (see NewClientFromEnv).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// NewClientFromEnv creates a client authenticated with the OpenID
// client-credentials grant.
//
// Supported env vars:
//   - ELFSQUAD_BASE_URL (default: https://api.elfsquad.io)
//   - ELFSQUAD_LOGIN_ENDPOINT (default: https://login.elfsquad.io/oauth2/token)
//   - ELFSQUAD_CLIENT_ID / ELFSQUAD_CLIENT_SECRET (required)
func NewClientFromEnv() *Client {
	clientID := os.Getenv("ELFSQUAD_CLIENT_ID")
	clientSecret := os.Getenv("ELFSQUAD_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatalf("[elfsquad][client] missing ELFSQUAD_CLIENT_ID and/or ELFSQUAD_CLIENT_SECRET")
	}

	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     getenvDefault("ELFSQUAD_LOGIN_ENDPOINT", defaultLoginEndpoint),
		Scopes:       []string{apiScope},
	}
	return NewClient(getenvDefault("ELFSQUAD_BASE_URL", defaultBaseURL), cc.Client(context.Background()))
}

func (c *Client) OpenConfiguration(ctx context.Context, configurationID string) (entities.Configuration, error) {
	body, err := c.do(ctx, http.MethodGet, "/configurator/1/configurator/open/"+configurationID, nil, "")
	if err != nil {
		return entities.Configuration{}, err
	}

	var cfg entities.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		return entities.Configuration{}, fmt.Errorf("decoding configuration %s: %w", configurationID, err)
	}
	cfg.Payload = body
	return cfg, nil
}

func (c *Client) GetConfiguration(ctx context.Context, configurationID string) (entities.Configuration, error) {
	body, err := c.do(ctx, http.MethodGet, "/data/1/Configurations/"+configurationID, nil, "")
	if err != nil {
		return entities.Configuration{}, err
	}

	var cfg entities.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		return entities.Configuration{}, fmt.Errorf("decoding configuration %s: %w", configurationID, err)
	}
	return cfg, nil
}

func (c *Client) ListQuotationLines(ctx context.Context, quotationID string) ([]entities.QuotationLine, error) {
	return fetchAll[entities.QuotationLine](ctx, c, "/data/1/QuotationLines"+odataFilter(fmt.Sprintf("quotationId eq %s", quotationID)))
}

func (c *Client) ListQuotationFiles(ctx context.Context, quotationID string) ([]entities.QuotationFile, error) {
	return fetchAll[entities.QuotationFile](ctx, c, "/data/1/QuotationFiles"+odataFilter(fmt.Sprintf("quotationId eq %s", quotationID)))
}

func (c *Client) GetFileEntity(ctx context.Context, fileID string) (entities.FileEntity, error) {
	body, err := c.do(ctx, http.MethodGet, "/data/1/FileEntities/"+fileID, nil, "")
	if err != nil {
		return entities.FileEntity{}, err
	}

	var entity entities.FileEntity
	if err := json.Unmarshal(body, &entity); err != nil {
		return entities.FileEntity{}, fmt.Errorf("decoding file entity %s: %w", fileID, err)
	}
	return entity, nil
}

func (c *Client) DeleteFileEntity(ctx context.Context, fileID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/2/files/entities/"+fileID, nil, "")
	return err
}

func (c *Client) UploadQuotationFile(ctx context.Context, quotationID, fileName string, content []byte) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, "/quotation/1/quotations/"+quotationID+"/addfile", &buf, form.FormDataContentType())
	return err
}

func (c *Client) ListQuotationPropertyValues(ctx context.Context, quotationID, propertyID string) ([]entities.QuotationPropertyValue, error) {
	filter := fmt.Sprintf("entityId eq %s and entityPropertyId eq %s", quotationID, propertyID)
	return fetchAll[entities.QuotationPropertyValue](ctx, c, "/data/1/QuotationPropertyValues"+odataFilter(filter))
}

func (c *Client) DeleteQuotationPropertyValue(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/data/1/QuotationPropertyValues(%s)", id), nil, "")
	return err
}

func (c *Client) CreateQuotationPropertyValue(ctx context.Context, value entities.QuotationPropertyValue) error {
	payload, err := json.Marshal(map[string]string{
		"entityId":         value.EntityID,
		"entityPropertyId": value.EntityPropertyID,
		"value":            value.Value,
	})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, "/data/1/QuotationPropertyValues", bytes.NewReader(payload), "application/json")
	return err
}

// do issues one request against the data API and returns the response body.
// 404 maps to interfaces.ErrNotFound; other non-2xx answers become remote
// call errors carrying the status and a body snippet.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	target := path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elfsquad %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("elfsquad %s %s: reading response: %w", method, path, err)
	}

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("elfsquad %s %s: %w", method, path, interfaces.ErrNotFound)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("elfsquad %s %s: status %d: %s", method, path, res.StatusCode, snippet(raw))
	}
	return raw, nil
}

// odataPage is the list envelope of the data API.
type odataPage[T any] struct {
	Value    []T    `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// fetchAll follows the server's continuation link until exhausted, capped at
// maxPages.
func fetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var result []T
	next := path
	for page := 0; next != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("elfsquad %s: pagination exceeded %d pages", path, maxPages)
		}

		body, err := c.do(ctx, http.MethodGet, next, nil, "")
		if err != nil {
			return nil, err
		}

		var envelope odataPage[T]
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("elfsquad %s: decoding page: %w", path, err)
		}
		result = append(result, envelope.Value...)
		next = envelope.NextLink
	}
	return result, nil
}

func odataFilter(expr string) string {
	return "?" + url.Values{"$filter": {expr}}.Encode()
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
