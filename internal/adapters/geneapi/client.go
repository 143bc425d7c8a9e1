package geneapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"sheep-breeding-web/internal/domain/breeding"
	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/platform/httpclient"
	"sheep-breeding-web/internal/platform/logger"
	"sheep-breeding-web/internal/platform/metrics"
)

const DefaultBaseURL = "http://localhost:8080"

var (
	// ErrUpstream envuelve cualquier fallo del backend: red, status no-2xx, breaker abierto, JSON inválido.
	ErrUpstream = errors.New("gene inference backend error")
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Breaker apagado = cada request sale siempre al backend.
	BreakerEnabled bool

	Logger  logger.Logger
	Metrics *metrics.Collector
}

// Client implementa sheep.Backend y breeding.Backend sobre la API REST del backend.
type Client struct {
	http    *httpclient.Client
	log     logger.Logger
	metrics *metrics.Collector
}

var (
	_ sheep.Backend    = (*Client)(nil)
	_ breeding.Backend = (*Client)(nil)
)

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	if cfg.BreakerEnabled {
		bc := httpclient.DefaultBreakerConfig("gene-api")
		bc.OnStateChange = func(name string, from, to gobreaker.State) {
			log.Warn("backend circuit breaker state changed", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			cfg.Metrics.SetBreakerState(name, int(to))
		}
		hc.WithBreaker(bc)
	}

	return &Client{
		http:    hc,
		log:     log.With(map[string]any{"component": "geneapi", "base_url": hc.BaseURL}),
		metrics: cfg.Metrics,
	}, nil
}

// predictionResponse es el sobre que usa el backend para /breed/.../predict.
type predictionResponse struct {
	PhenotypeDistributions sheep.Prediction `json:"phenotypeDistributions"`
}

func (c *Client) ListSheep(ctx context.Context) ([]sheep.Sheep, error) {
	var out []sheep.Sheep
	if _, err := c.call(ctx, "list_sheep", http.MethodGet, "/sheep", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []sheep.Sheep{}
	}
	return out, nil
}

func (c *Client) GetSheep(ctx context.Context, id int) (sheep.Sheep, error) {
	var out sheep.Sheep
	_, err := c.call(ctx, "get_sheep", http.MethodGet, fmt.Sprintf("/sheep/%d", id), nil, &out)
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return sheep.Sheep{}, sheep.ErrNotFound
		}
		return sheep.Sheep{}, err
	}
	return out, nil
}

func (c *Client) CreateSheep(ctx context.Context, req sheep.CreateRequest) (sheep.Sheep, error) {
	var out sheep.Sheep
	if _, err := c.call(ctx, "create_sheep", http.MethodPost, "/sheep", req, &out); err != nil {
		return sheep.Sheep{}, err
	}
	c.metrics.IncSheepCreated()
	return out, nil
}

// GetParents devuelve nil si el backend responde 204 (sin padres registrados).
func (c *Client) GetParents(ctx context.Context, id int) (*sheep.Parents, error) {
	var out sheep.Parents
	resp, err := c.call(ctx, "get_parents", http.MethodGet, fmt.Sprintf("/sheep/%d/parents", id), nil, &out)
	if err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return nil, sheep.ErrNotFound
		}
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) ListChildren(ctx context.Context, id int) ([]sheep.Sheep, error) {
	return c.listRelated(ctx, "list_children", fmt.Sprintf("/sheep/%d/children", id))
}

func (c *Client) ListPartners(ctx context.Context, id int) ([]sheep.Sheep, error) {
	return c.listRelated(ctx, "list_partners", fmt.Sprintf("/sheep/%d/partners", id))
}

func (c *Client) listRelated(ctx context.Context, op, path string) ([]sheep.Sheep, error) {
	var out []sheep.Sheep
	if _, err := c.call(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []sheep.Sheep{}
	}
	return out, nil
}

func (c *Client) Predict(ctx context.Context, sheep1ID, sheep2ID int) (sheep.Prediction, error) {
	var out predictionResponse
	path := fmt.Sprintf("/breed/%d/%d/predict", sheep1ID, sheep2ID)
	if _, err := c.call(ctx, "predict", http.MethodGet, path, nil, &out); err != nil {
		if httpclient.StatusCode(err) == http.StatusNotFound {
			return nil, sheep.ErrNotFound
		}
		return nil, err
	}
	if out.PhenotypeDistributions == nil {
		return sheep.Prediction{}, nil
	}
	return out.PhenotypeDistributions, nil
}

func (c *Client) ListRelationships(ctx context.Context) ([]breeding.Relationship, error) {
	var out []breeding.Relationship
	if _, err := c.call(ctx, "list_relationships", http.MethodGet, "/relationship", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []breeding.Relationship{}
	}
	return out, nil
}

// call centraliza logging, métricas y el wrap con ErrUpstream.
// El *HTTPError original queda en la cadena para que los callers miren el status.
func (c *Client) call(ctx context.Context, op, method, path string, in, out any) (httpclient.Response, error) {
	start := time.Now()
	resp, err := c.http.DoJSON(ctx, method, path, nil, in, out)
	elapsed := time.Since(start)
	c.metrics.ObserveBackend(op, err, elapsed)

	if err != nil {
		c.log.Warn("backend call failed", map[string]any{
			"op":          op,
			"method":      method,
			"path":        path,
			"status":      httpclient.StatusCode(err),
			"duration_ms": elapsed.Milliseconds(),
			"error":       err,
		})
		return resp, fmt.Errorf("%w: %s %s: %w", ErrUpstream, method, path, err)
	}

	c.log.Debug("backend call", map[string]any{
		"op":          op,
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": elapsed.Milliseconds(),
	})
	return resp, nil
}
