// Package client is a typed HTTP client for the back-office REST API.
//
// Every entity exposes list, get, create, update and delete. Calls are not retried.
// Any failure, including a non-2xx status, comes back as an *OperationError.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"backoffice/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Operation names carried by OperationError.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Client accesses the products, accounts and orders resources below a base URL.
type Client struct {
	baseURL string
	timeout time.Duration
	agents  *fiber.Client
}

// New creates a Client for baseURL (e.g. "http://localhost:9090/api").
// timeout bounds every request; zero means no bound other than the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		agents: &fiber.Client{
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

// BaseURL returns the URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	op       string
	resource models.Resource
	id       int64
	suffix   string
	method   string
	query    url.Values
	body     interface{}
}

func (r request) path() string {
	p := "/" + r.resource.String()
	if r.id != 0 {
		p += fmt.Sprintf("/%d", r.id)
	}
	p += r.suffix
	if len(r.query) > 0 {
		p += "?" + r.query.Encode()
	}
	return p
}

func (r request) fail(status int, err error) error {
	return &OperationError{
		Op:         r.op,
		Resource:   r.resource,
		ID:         r.id,
		StatusCode: status,
		Err:        err,
	}
}

// do performs r and decodes a successful response body into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	timeout, err := c.timeoutFor(ctx)
	if err != nil {
		return r.fail(0, err)
	}

	target := c.baseURL + r.path()
	var agent *fiber.Agent
	switch r.method {
	case http.MethodGet:
		agent = c.agents.Get(target)
	case http.MethodPost:
		agent = c.agents.Post(target)
	case http.MethodPut:
		agent = c.agents.Put(target)
	case http.MethodDelete:
		agent = c.agents.Delete(target)
	default:
		return r.fail(0, fmt.Errorf("unsupported method %s", r.method))
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if r.body != nil {
		agent.JSON(r.body)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return r.fail(0, errors.Join(errs...))
	}
	if status < 200 || status > 299 {
		return r.fail(status, nil)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return r.fail(status, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// timeoutFor returns the request timeout: the client timeout, shortened to the
// context deadline when that comes first.
func (c *Client) timeoutFor(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}

func list[T any](ctx context.Context, c *Client, resource models.Resource, query url.Values) ([]T, error) {
	items := []T{}
	r := request{op: OpList, resource: resource, method: http.MethodGet, query: query}
	if err := c.do(ctx, r, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func get[T any](ctx context.Context, c *Client, resource models.Resource, id int64) (*T, error) {
	var item T
	r := request{op: OpGet, resource: resource, id: id, method: http.MethodGet}
	if err := c.do(ctx, r, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func create[T any](ctx context.Context, c *Client, resource models.Resource, payload interface{}) (*T, error) {
	var item T
	r := request{op: OpCreate, resource: resource, method: http.MethodPost, body: payload}
	if err := c.do(ctx, r, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func update[T any](ctx context.Context, c *Client, resource models.Resource, id int64, payload T) (*T, error) {
	var item T
	r := request{op: OpUpdate, resource: resource, id: id, method: http.MethodPut, body: payload}
	if err := c.do(ctx, r, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) remove(ctx context.Context, resource models.Resource, id int64) error {
	return c.do(ctx, request{op: OpDelete, resource: resource, id: id, method: http.MethodDelete}, nil)
}
