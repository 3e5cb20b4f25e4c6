//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/labops/labstock/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type itemPayload struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	UnitPriceDisplay    string  `json:"unitPriceDisplay"`
	Quantity            int     `json:"quantity"`
	InitialQuantity     int     `json:"initialQuantity"`
	Status              string  `json:"status"`
	CurrentValue        float64 `json:"currentValue"`
	CurrentValueDisplay string  `json:"currentValueDisplay"`
	InitialInvestment   float64 `json:"initialInvestment"`
}

type itemForm struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type metricsPayload struct {
	ItemCount     int    `json:"itemCount"`
	LowStockCount int    `json:"lowStockCount"`
	Alert         string `json:"alert"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestLabDashboardContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	example := pacttest.ExampleItemPayload()
	itemBodyMatcher := matchers.Map{
		"id":                  matchers.Term(example["id"].(string), "ITM\\d+"),
		"name":                matchers.Like(example["name"]),
		"unitPrice":           matchers.Like(example["unitPrice"]),
		"unitPriceDisplay":    matchers.Like(example["unitPriceDisplay"]),
		"quantity":            matchers.Like(example["quantity"]),
		"initialQuantity":     matchers.Like(example["initialQuantity"]),
		"status":              matchers.Term(example["status"].(string), "ZERO|LOW|HEALTHY"),
		"currentValue":        matchers.Like(example["currentValue"]),
		"currentValueDisplay": matchers.Like(example["currentValueDisplay"]),
		"initialInvestment":   matchers.Like(example["initialInvestment"]),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateInventorySeeded).
		UponReceiving("a request to list the inventory").
		WithRequest("GET", "/v1/items").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(itemBodyMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateInventorySeeded).
		UponReceiving("a request to register a new item").
		WithRequest("POST", "/v1/items", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"name":     matchers.Like("Resistor Kit"),
				"price":    matchers.Like("45.00"),
				"quantity": matchers.Like("20"),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(itemBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateItemExists).
		UponReceiving("a request to fetch an existing item").
		WithRequest("GET", "/v1/items/"+pacttest.ExistingItemID).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(itemBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateItemMissing).
		UponReceiving("a request for a missing item").
		WithRequest("GET", "/v1/items/"+pacttest.MissingItemID).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateInventorySeeded).
		UponReceiving("a request for the dashboard metrics").
		WithRequest("GET", "/v1/metrics").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"itemCount":                matchers.Like(5),
				"totalCurrentValue":        matchers.Like(52767.5),
				"totalCurrentValueDisplay": matchers.Like("₹52,767.50"),
				"totalInvestment":          matchers.Like(60272.5),
				"totalInvestmentDisplay":   matchers.Like("₹60,272.50"),
				"lowStockCount":            matchers.Like(4),
				"alert":                    matchers.Like("ALERT: 4 items need restocking!"),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newDashboardClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		items, err := client.ListItems(ctx)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("expected at least one item in the inventory")
		}

		created, err := client.CreateItem(ctx, itemForm{Name: "Resistor Kit", Price: "45.00", Quantity: "20"})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if created == nil || created.ID == "" {
			return fmt.Errorf("expected created item id to be set")
		}

		fetched, err := client.GetItem(ctx, pacttest.ExistingItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if fetched == nil || fetched.ID != pacttest.ExistingItemID {
			return fmt.Errorf("expected item id %s, got %+v", pacttest.ExistingItemID, fetched)
		}

		if _, err := client.GetItem(ctx, pacttest.MissingItemID); err == nil {
			return fmt.Errorf("expected 404 for item %s", pacttest.MissingItemID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		metrics, err := client.GetMetrics(ctx)
		if err != nil {
			return fmt.Errorf("get metrics: %w", err)
		}
		if metrics.ItemCount == 0 {
			return fmt.Errorf("expected metrics to report items")
		}

		return nil
	})
	require.NoError(t, err)
}

type dashboardClient struct {
	baseURL    string
	httpClient *http.Client
}

func newDashboardClient(config pactconsumer.MockServerConfig) *dashboardClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &dashboardClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *dashboardClient) ListItems(ctx context.Context) ([]itemPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/items", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload []itemPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *dashboardClient) CreateItem(ctx context.Context, form itemForm) (*itemPayload, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/items", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload itemPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *dashboardClient) GetItem(ctx context.Context, id string) (*itemPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/items/"+id, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload itemPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *dashboardClient) GetMetrics(ctx context.Context) (*metricsPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/metrics", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var payload metricsPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
