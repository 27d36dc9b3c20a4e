// Package directory fetches the demo user directory shown nowhere in the UI;
// the result is only logged when the todo view opens.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// User is one entry of the directory response.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type page struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// Client performs the directory GET.
type Client struct {
	Endpoint   string
	HTTP       *http.Client
	Timeout    time.Duration
	MaxRetries int
	// RetryInterval is the first backoff delay between attempts.
	RetryInterval time.Duration
}

// NewClient returns a Client for endpoint. maxRetries of 0 means one attempt.
func NewClient(endpoint string, timeout time.Duration, maxRetries int) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		Endpoint:      endpoint,
		HTTP:          &http.Client{Timeout: timeout},
		Timeout:       timeout,
		MaxRetries:    maxRetries,
		RetryInterval: 500 * time.Millisecond,
	}
}

// Fetch requests the directory and decodes its users.
func (c *Client) Fetch(ctx context.Context) ([]User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	retries := c.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.RetryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)

	var users []User
	err := backoff.Retry(func() error {
		var err error
		users, err = c.get(ctx)
		return err
	}, policy)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) get(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid URL %q: %w", c.Endpoint, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("get directory: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("get directory: status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	var p page
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode directory: %w", err))
	}
	return p.Data, nil
}
