// Package spoonacular is a client for the Spoonacular recipe API.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"recipefinder/internal/config"
	"recipefinder/internal/metrics"
)

// ResultLimit caps the number of recipes returned by a search.
const ResultLimit = 20

// RecipeProvider is the subset of the Spoonacular API the service uses.
type RecipeProvider interface {
	Search(ctx context.Context, req SearchRequest) ([]json.RawMessage, error)
	Information(ctx context.Context, id string) (json.RawMessage, error)
	AnalyzedInstructions(ctx context.Context, id string) ([]AnalyzedInstruction, error)
	Equipment(ctx context.Context, id string) ([]Equipment, error)
	InformationBulk(ctx context.Context, ids []string) ([]Recipe, error)
}

// UpstreamError is returned for any non-200 response.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	StatusText string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("spoonacular %s: unexpected status %d %s", e.Endpoint, e.StatusCode, e.StatusText)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(cfg config.SpoonacularConfig, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: m,
	}
}

func (c *Client) Search(ctx context.Context, req SearchRequest) ([]json.RawMessage, error) {
	switch r := req.(type) {
	case ByIngredients:
		params := url.Values{}
		params.Set("ingredients", strings.Join(r.Ingredients, ","))
		params.Set("number", strconv.Itoa(ResultLimit))
		params.Set("ranking", "2")
		params.Set("ignorePantry", "true")

		var recipes []json.RawMessage
		if err := c.get(ctx, "findByIngredients", "/recipes/findByIngredients", params, &recipes); err != nil {
			return nil, err
		}
		return recipes, nil

	case ByTitle:
		params := url.Values{}
		params.Set("query", r.Title)
		params.Set("number", strconv.Itoa(ResultLimit))
		params.Set("addRecipeInformation", "true")

		var resp complexSearchResponse
		if err := c.get(ctx, "complexSearch", "/recipes/complexSearch", params, &resp); err != nil {
			return nil, err
		}
		return resp.Results, nil

	default:
		return nil, fmt.Errorf("spoonacular: unsupported search request %T", req)
	}
}

func (c *Client) Information(ctx context.Context, id string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("includeNutrition", "false")

	var detail json.RawMessage
	if err := c.get(ctx, "information", "/recipes/"+url.PathEscape(id)+"/information", params, &detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (c *Client) AnalyzedInstructions(ctx context.Context, id string) ([]AnalyzedInstruction, error) {
	var instructions []AnalyzedInstruction
	if err := c.get(ctx, "analyzedInstructions", "/recipes/"+url.PathEscape(id)+"/analyzedInstructions", url.Values{}, &instructions); err != nil {
		return nil, err
	}
	return instructions, nil
}

func (c *Client) Equipment(ctx context.Context, id string) ([]Equipment, error) {
	var resp equipmentWidgetResponse
	if err := c.get(ctx, "equipmentWidget", "/recipes/"+url.PathEscape(id)+"/equipmentWidget.json", url.Values{}, &resp); err != nil {
		return nil, err
	}
	return resp.Equipment, nil
}

func (c *Client) InformationBulk(ctx context.Context, ids []string) ([]Recipe, error) {
	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))

	var recipes []Recipe
	if err := c.get(ctx, "informationBulk", "/recipes/informationBulk", params, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("spoonacular %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, 0, time.Since(start))
		return fmt.Errorf("spoonacular %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveUpstream(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spoonacular %s: decode response: %w", endpoint, err)
	}
	return nil
}

// statusText returns the reason phrase the server sent, without the code.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
}
