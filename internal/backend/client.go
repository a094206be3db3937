package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"techstore/internal/domain"
)

// ProductFetcher is the catalog side of the backend boundary.
type ProductFetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

// Authenticator is the auth side of the backend boundary.
type Authenticator interface {
	SubmitLogin(ctx context.Context, name, password string) (domain.User, error)
	SubmitRegistration(ctx context.Context, form domain.RegistrationForm) error
}

// StatusError is an explicit rejection from the backend: a non-2xx
// response, carrying the response's error message when one was sent.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the remote product and auth services. It adds no
// retries and no timeout of its own; the injected http.Client decides
// both.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: baseURL, http: hc}
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}
	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	for i := range products {
		products[i].Category = domain.ParseCategory(string(products[i].Category))
	}
	return products, nil
}

func (c *Client) SubmitLogin(ctx context.Context, name, password string) (domain.User, error) {
	body := map[string]string{"name": name, "password": password}
	resp, err := c.post(ctx, "/login", body)
	if err != nil {
		return domain.User{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.User{}, statusError(resp)
	}
	var payload struct {
		User domain.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.User{}, fmt.Errorf("decode login response: %w", err)
	}
	return payload.User, nil
}

func (c *Client) SubmitRegistration(ctx context.Context, form domain.RegistrationForm) error {
	resp, err := c.post(ctx, "/register", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	// Acknowledgement payload is ignored.
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return resp, nil
}

// statusError drains the body looking for an {"error": "..."} payload;
// anything unparseable is treated as opaque.
func statusError(resp *http.Response) error {
	se := &StatusError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			se.Message = payload.Error
		}
	}
	return se
}
