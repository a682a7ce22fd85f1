// Package accountsapi is the HTTP client of the accounts service. It serves
// the view state drivers as their account, order and detail source.
package accountsapi

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/viewstate"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

var (
	_ viewstate.AccountSource = (*Client)(nil)
	_ viewstate.OrderSource   = (*Client)(nil)
	_ viewstate.DetailSource  = (*Client)(nil)
)

// StatusError is returned for any non-2xx answer other than 404.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("accounts api failed with status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("accounts api failed with status code %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid accounts api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid accounts api url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListAccounts(ctx context.Context, page viewstate.PageRequest) ([]viewstate.Account, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(page.Limit))
	q.Set("offset", strconv.Itoa(page.Offset))
	if page.Search != "" {
		q.Set("search", page.Search)
	}

	var resp contract.AccountsPage
	if err := c.do(ctx, http.MethodGet, "/api/accounts", q, nil, &resp); err != nil {
		return nil, err
	}
	return accountsToDomain(resp.Accounts), nil
}

func (c *Client) GetAccount(ctx context.Context, id viewstate.AccountID) (*viewstate.Account, error) {
	var resp contract.AccountResponse
	if err := c.do(ctx, http.MethodGet, "/api/accounts/"+url.PathEscape(string(id)), nil, nil, &resp); err != nil {
		return nil, err
	}
	account := accountToDomain(&resp)
	return &account, nil
}

// ListAccountOrders returns the most recent orders where id is buyer or
// seller.
func (c *Client) ListAccountOrders(ctx context.Context, id viewstate.AccountID, limit int) ([]viewstate.Order, error) {
	q := url.Values{}
	q.Set("account_id", string(id))
	q.Set("limit", strconv.Itoa(limit))

	var resp contract.OrdersPage
	if err := c.do(ctx, http.MethodGet, "/api/invoices", q, nil, &resp); err != nil {
		return nil, err
	}
	return ordersToDomain(resp.Orders), nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*viewstate.Order, error) {
	var resp contract.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	order := orderToDomain(&resp)
	return &order, nil
}

func (c *Client) CreateAccount(ctx context.Context, req *contract.CreateAccountRequest) (*viewstate.Account, error) {
	var resp contract.AccountResponse
	if err := c.do(ctx, http.MethodPost, "/api/accounts", nil, req, &resp); err != nil {
		return nil, err
	}
	account := accountToDomain(&resp)
	return &account, nil
}

func (c *Client) CreateAddress(ctx context.Context, id viewstate.AccountID, form *viewstate.AddressForm) error {
	path := "/api/accounts/" + url.PathEscape(string(id)) + "/addresses"
	return c.do(ctx, http.MethodPost, path, nil, addressRequest(form), nil)
}

func (c *Client) CreateContact(ctx context.Context, id viewstate.AccountID, form *viewstate.ContactForm) error {
	path := "/api/accounts/" + url.PathEscape(string(id)) + "/contacts"
	return c.do(ctx, http.MethodPost, path, nil, contactRequest(form), nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
