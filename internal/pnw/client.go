// Package pnw provides a client for the Politics & War GraphQL API.
package pnw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultURL is the public GraphQL endpoint
const DefaultURL = "https://api.politicsandwar.com/graphql"

var (
	// ErrNationNotFound is returned when the API has no nation for an ID
	ErrNationNotFound = errors.New("nation not found")
	// ErrNoAPIKey is returned when the client was built without a key
	ErrNoAPIKey = errors.New("no API key configured")
)

const cityFields = `
	id name date infrastructure land
	coal_power oil_power nuclear_power wind_power
	coal_mine oil_well uranium_mine lead_mine iron_mine bauxite_mine farm
	oil_refinery aluminum_refinery munitions_factory steel_mill
	police_station hospital recycling_center subway
	supermarket bank shopping_mall stadium
	barracks factory hangar drydock`

const nationFields = `
	id nation_name leader_name continent score population
	soldiers tanks aircraft ships spies missiles nukes
	money coal oil uranium iron bauxite lead gasoline munitions steel aluminum food credits
	green_technologies mass_irrigation recycling_initiative clinical_research_center
	specialized_police_training_program advanced_engineering_corps center_for_civil_engineering
	alliance { id name }
	cities {` + cityFields + ` }`

const nationQuery = `query Nation($id: [Int]) {
	nations(id: $id, first: 1) { data {` + nationFields + `
		bankrecs { id date sender_id receiver_id note
			money coal oil uranium iron bauxite lead gasoline munitions steel aluminum food }
	} }
}`

const allianceQuery = `query Members($alliance: [Int]) {
	nations(alliance_id: $alliance, vmode: false, first: 500) { data {` + nationFields + ` } }
}`

// Client wraps the GraphQL API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new API client. An empty baseURL uses DefaultURL.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: slog.Default(),
	}
}

// WithLogger sets the logger used for request tracing
func (c *Client) WithLogger(l *slog.Logger) *Client {
	c.log = l
	return c
}

// Enabled returns true if the client has an API key
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Nation fetches a nation with its cities and bank records
func (c *Client) Nation(ctx context.Context, id int) (*Nation, error) {
	var resp nationsResponse
	if err := c.do(ctx, nationQuery, map[string]any{"id": []int{id}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data.Nations.Data) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNationNotFound, id)
	}
	return &resp.Data.Nations.Data[0], nil
}

// AllianceMembers fetches the active members of an alliance
func (c *Client) AllianceMembers(ctx context.Context, allianceID int) ([]Nation, error) {
	var resp nationsResponse
	if err := c.do(ctx, allianceQuery, map[string]any{"alliance": []int{allianceID}}, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Nations.Data, nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out *nationsResponse) error {
	if !c.Enabled() {
		return ErrNoAPIKey
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL carries the api_key query parameter
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = c.baseURL
		}
		return fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("graphql request", "status", resp.StatusCode, "bytes", len(respBody), "took", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Errors) > 0 {
		msgs := make([]string, len(out.Errors))
		for i, e := range out.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("API error: %s", strings.Join(msgs, "; "))
	}
	return nil
}
