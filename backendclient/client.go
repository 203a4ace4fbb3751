// Package backendclient calls the mock account backend over HTTP.
package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/junaidrashid-git/paintstore-api/models"
)

// Error is returned for any non-2xx response. Message comes from the body's
// "error" field when there is one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the backend at baseURL. A nil httpClient gets a
// client with a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name,omitempty"`
	MemberSince string `json:"memberSince,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{"email": email, "password": password}, &out)
	return out, err
}

func (c *Client) ListAddresses(ctx context.Context, userID string) ([]models.SavedAddress, error) {
	var out []models.SavedAddress
	err := c.do(ctx, http.MethodGet, "/account/addresses?userId="+url.QueryEscape(userID), nil, &out)
	return out, err
}

// FindAddress returns the user's saved address with id.
func (c *Client) FindAddress(ctx context.Context, userID, id string) (models.SavedAddress, error) {
	addrs, err := c.ListAddresses(ctx, userID)
	if err != nil {
		return models.SavedAddress{}, err
	}
	for _, a := range addrs {
		if a.ID == id {
			return a, nil
		}
	}
	return models.SavedAddress{}, &Error{Status: http.StatusNotFound, Message: "Address not found"}
}

func (c *Client) CreateAddress(ctx context.Context, userID string, addr models.Address) (models.SavedAddress, error) {
	var out models.SavedAddress
	err := c.do(ctx, http.MethodPost, "/account/addresses", models.SavedAddress{Address: addr, UserID: userID}, &out)
	return out, err
}

func (c *Client) UpdateAddress(ctx context.Context, userID, id string, addr models.Address) (models.SavedAddress, error) {
	var out models.SavedAddress
	err := c.do(ctx, http.MethodPut, "/account/addresses/"+url.PathEscape(id), models.SavedAddress{Address: addr, UserID: userID}, &out)
	return out, err
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/account/addresses/"+url.PathEscape(id), nil, nil)
}

// Resource fetches a top-level backend collection as raw JSON.
func (c *Client) Resource(ctx context.Context, name string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}
