// ABOUTME: Minimal USDA FoodData Central client for calorie lookups.
// ABOUTME: Two-step flow: search for an fdcId, then read the Energy nutrient.
package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// Client queries the USDA FoodData Central API. Get a free key at
// https://fdc.nal.usda.gov/api-key-signup and set USDA_API_KEY.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FromEnv returns a client when USDA_API_KEY is set, else nil.
func FromEnv() *Client {
	key := os.Getenv("USDA_API_KEY")
	if key == "" {
		return nil
	}
	return NewClient(key)
}

type searchResponse struct {
	Foods []struct {
		FdcID       int    `json:"fdcId"`
		Description string `json:"description"`
	} `json:"foods"`
}

type nutrientDetail struct {
	Name     string  `json:"nutrientName"`
	UnitName string  `json:"unitName"`
	Value    float64 `json:"value"`
	Amount   float64 `json:"amount"`
	Nutrient struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
}

type foodDetail struct {
	Description   string           `json:"description"`
	FoodNutrients []nutrientDetail `json:"foodNutrients"`
}

// Suggestion is a calorie estimate from the USDA database.
type Suggestion struct {
	Description string
	Calories    int
}

// SuggestCalories looks up the best match for query and returns its
// energy value in kcal.
func (c *Client) SuggestCalories(ctx context.Context, query string) (*Suggestion, error) {
	fdcID, desc, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}

	detail, err := c.food(ctx, fdcID)
	if err != nil {
		return nil, err
	}
	if detail.Description != "" {
		desc = detail.Description
	}

	for _, n := range detail.FoodNutrients {
		name := n.Name
		if name == "" {
			name = n.Nutrient.Name
		}
		unit := n.UnitName
		if unit == "" {
			unit = n.Nutrient.UnitName
		}
		if !strings.EqualFold(name, "energy") || !strings.EqualFold(unit, "kcal") {
			continue
		}
		value := n.Value
		if value == 0 {
			value = n.Amount
		}
		return &Suggestion{Description: desc, Calories: int(value)}, nil
	}
	return nil, fmt.Errorf("no energy data for %q", query)
}

func (c *Client) search(ctx context.Context, query string) (int, string, error) {
	body, err := json.Marshal(map[string]any{"query": query, "pageSize": 1})
	if err != nil {
		return 0, "", err
	}

	url := fmt.Sprintf("%s/foods/search?api_key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var sr searchResponse
	if err := c.do(req, &sr); err != nil {
		return 0, "", fmt.Errorf("USDA search failed: %w", err)
	}
	if len(sr.Foods) == 0 {
		return 0, "", fmt.Errorf("no USDA match for %q", query)
	}
	return sr.Foods[0].FdcID, sr.Foods[0].Description, nil
}

func (c *Client) food(ctx context.Context, fdcID int) (*foodDetail, error) {
	url := fmt.Sprintf("%s/food/%d?api_key=%s", c.baseURL, fdcID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var detail foodDetail
	if err := c.do(req, &detail); err != nil {
		return nil, fmt.Errorf("USDA food lookup failed: %w", err)
	}
	return &detail, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
