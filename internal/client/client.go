// Package client is the HTTP API client used by the CLI and the TUI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/dfarias/cacauledger/internal/report"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) CreateClient(ctx context.Context, cl *ledger.Client) (*ledger.Client, error) {
	body := map[string]any{
		"full_name": cl.FullName,
		"cpf":       cl.CPF,
		"phone":     cl.Phone,
	}
	var result ledger.Client
	if err := c.post(ctx, "/api/v1/clients", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListClients(ctx context.Context, search string) ([]ledger.Client, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	var result []ledger.Client
	if err := c.get(ctx, "/api/v1/clients?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetClient(ctx context.Context, id string) (*ledger.Client, error) {
	var result ledger.Client
	if err := c.get(ctx, "/api/v1/clients/"+url.PathEscape(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateClient(ctx context.Context, cl *ledger.Client) (*ledger.Client, error) {
	body := map[string]any{
		"full_name": cl.FullName,
		"cpf":       cl.CPF,
		"phone":     cl.Phone,
	}
	var result ledger.Client
	if err := c.put(ctx, "/api/v1/clients/"+url.PathEscape(cl.ID), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/clients/"+url.PathEscape(id))
}

func (c *Client) CreateTransaction(ctx context.Context, txn *ledger.Transaction) (*ledger.Transaction, error) {
	body := map[string]any{
		"client_id":          txn.ClientID,
		"date":               txn.Date,
		"kind":               txn.Kind,
		"quantity_kg":        txn.QuantityKg,
		"price_per_kg_cents": txn.PricePerKgCents,
		"amount_cents":       txn.AmountCents,
		"note":               txn.Note,
	}
	var result ledger.Transaction
	if err := c.post(ctx, "/api/v1/transactions", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListTransactions(ctx context.Context, clientID string) ([]ledger.Transaction, error) {
	params := url.Values{}
	if clientID != "" {
		params.Set("client_id", clientID)
	}
	var result []ledger.Transaction
	if err := c.get(ctx, "/api/v1/transactions?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	var result ledger.Transaction
	if err := c.get(ctx, "/api/v1/transactions/"+url.PathEscape(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetStatement(ctx context.Context, clientID string, year int) (*ledger.Statement, error) {
	params := url.Values{}
	if year != 0 {
		params.Set("year", fmt.Sprintf("%d", year))
	}
	var result ledger.Statement
	path := "/api/v1/clients/" + url.PathEscape(clientID) + "/statement?" + params.Encode()
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetDashboard(ctx context.Context) (*ledger.Dashboard, error) {
	var result ledger.Dashboard
	if err := c.get(ctx, "/api/v1/dashboard", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetReport(ctx context.Context, clientID string, from, to ledger.Date) (*report.Data, error) {
	params := url.Values{}
	if !from.IsZero() {
		params.Set("from", from.String())
	}
	if !to.IsZero() {
		params.Set("to", to.String())
	}
	var result report.Data
	path := "/api/v1/clients/" + url.PathEscape(clientID) + "/report?" + params.Encode()
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExportReport returns the rendered text report and its suggested filename.
func (c *Client) ExportReport(ctx context.Context, clientID string, from, to ledger.Date) (string, string, error) {
	params := url.Values{}
	if !from.IsZero() {
		params.Set("from", from.String())
	}
	if !to.IsZero() {
		params.Set("to", to.String())
	}
	path := "/api/v1/clients/" + url.PathEscape(clientID) + "/report/export?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", "", apiErrorFrom(resp.StatusCode, bodyBytes)
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}
	return string(bodyBytes), filename, nil
}

func (c *Client) ListPreferences(ctx context.Context) ([]ledger.Preference, error) {
	var result []ledger.Preference
	if err := c.get(ctx, "/api/v1/preferences", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SetPreference(ctx context.Context, name, value string) error {
	return c.put(ctx, "/api/v1/preferences/"+url.PathEscape(name), map[string]any{"value": value}, nil)
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/dashboard", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) del(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	return c.send(ctx, "POST", path, body, result)
}

func (c *Client) put(ctx context.Context, path string, body any, result any) error {
	return c.send(ctx, "PUT", path, body, result)
}

func (c *Client) send(ctx context.Context, method, path string, body any, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doRequest(req, result)
}

type apiError struct {
	Error string `json:"error"`
}

func apiErrorFrom(status int, body []byte) error {
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", status, apiErr.Error)
	}
	return fmt.Errorf("server error (%d): %s", status, string(body))
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apiErrorFrom(resp.StatusCode, bodyBytes)
	}

	if result != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
