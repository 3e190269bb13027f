package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/pepperoni-tatar/pagegen/internal/core"
)

const DefaultTimeout = 30 * time.Second

var (
	ErrUnexpectedStatus = errors.New("unexpected catalog response status")
	ErrMalformedCatalog = errors.New("malformed catalog response")
)

type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	log     zerolog.Logger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.timeout = d
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(client *Client) {
		client.log = log
	}
}

func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
		http:    http.DefaultClient,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the catalog with a single GET and decodes its products.
// There is no retry.
func (c *Client) Fetch(ctx context.Context) ([]core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.log.Debug().Str("url", c.url).Msg("fetching catalog")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	products, err := Decode(body)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Int("products", len(products)).
		Dur("elapsed", time.Since(start)).
		Msg("catalog fetched")
	return products, nil
}

// Decode parses a catalog body of the form {"products": [...]}. A body
// without the products key is an empty catalog.
func Decode(body []byte) ([]core.Product, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedCatalog)
	}
	if !gjson.ParseBytes(body).IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedCatalog)
	}

	list := gjson.GetBytes(body, "products")
	if !list.Exists() {
		return []core.Product{}, nil
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: products is not a list", ErrMalformedCatalog)
	}

	var products []core.Product
	if err := json.Unmarshal([]byte(list.Raw), &products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	return products, nil
}
