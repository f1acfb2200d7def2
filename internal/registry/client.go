// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry is a client for the BioSamples schema store: the field
// directory and the schema listing.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/httpclient"
)

// DefaultBaseURL is the public schema store v2 API.
const DefaultBaseURL = "https://www.ebi.ac.uk/biosamples/schema-store/api/v2"

// DefaultPageSize is the page size the store is queried with by default.
const DefaultPageSize = 1000

// Client talks to the schema store. It holds no state between calls.
type Client struct {
	baseURL   string
	exec      *httpclient.Executor
	log       *zap.Logger
	baselines Baselines
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another store.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithExecutor sets the HTTP executor.
func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithBaselines replaces the default baseline field sets.
func WithBaselines(b Baselines) Option {
	return func(c *Client) { c.baselines = b }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		baselines: DefaultBaselines(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.exec == nil {
		c.exec = httpclient.NewExecutor(httpclient.WithLogger(c.log))
	}
	return c
}

// Baselines returns a copy of the baseline sets fixed at construction.
func (c *Client) Baselines() Baselines { return c.baselines.clone() }

// ListFieldLabels returns the non-empty labels of one page of fields,
// sorted case-insensitively with ties broken by the original strings.
func (c *Client) ListFieldLabels(ctx context.Context, pageSize int) ([]string, error) {
	fields, err := c.fields(ctx, pageSize)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Label != "" {
			labels = append(labels, f.Label)
		}
	}
	slices.SortStableFunc(labels, func(a, b string) int {
		if d := strings.Compare(strings.ToLower(a), strings.ToLower(b)); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	c.log.Debug("listed field labels", zap.Int("count", len(labels)))
	return labels, nil
}

// LatestField returns the most recent revision of the field with exactly
// this label, or nil when no field carries it.
func (c *Client) LatestField(ctx context.Context, label string, pageSize int) (*FieldRecord, error) {
	fields, err := c.fields(ctx, pageSize)
	if err != nil {
		return nil, err
	}

	var latest *FieldRecord
	for i := range fields {
		if fields[i].Label != label {
			continue
		}
		if latest == nil || fields[i].newer(*latest) {
			latest = &fields[i]
		}
	}

	if latest == nil {
		c.log.Debug("field label not found", zap.String("label", label))
	}
	return latest, nil
}

// ListSchemas returns (id, accession, name) for every schema in the store.
// The embedded collection may be an object keyed by anything or an array;
// object values are taken in document order.
func (c *Client) ListSchemas(ctx context.Context) ([]SchemaSummary, error) {
	const op = "registry.list_schemas"
	endpoint := c.baseURL + "/schemas/list"

	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var listing struct {
		Embedded struct {
			Schemas json.RawMessage `json:"schemas"`
		} `json:"_embedded"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, unavailable(op, endpoint, fmt.Errorf("decoding response: %w", err))
	}

	values, err := collectionValues(listing.Embedded.Schemas)
	if err != nil {
		return nil, unavailable(op, endpoint, fmt.Errorf("decoding schemas: %w", err))
	}

	out := make([]SchemaSummary, 0, len(values))
	for _, raw := range values {
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
			continue
		}
		id, ok := idString(obj["id"])
		if !ok {
			continue
		}
		out = append(out, SchemaSummary{
			ID:        id,
			Accession: optionalString(obj["accession"]),
			Name:      optionalString(obj["name"]),
		})
	}

	c.log.Debug("listed schemas", zap.Int("count", len(out)))
	return out, nil
}

func (c *Client) fields(ctx context.Context, pageSize int) ([]FieldRecord, error) {
	const op = "registry.fields"
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	endpoint := c.baseURL + "/fields?" + url.Values{"size": {strconv.Itoa(pageSize)}}.Encode()

	body, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, unavailable(op, endpoint, fmt.Errorf("decoding response: %w", err))
	}

	// A missing _embedded block means an empty page.
	found, err := jsonpath.Get(`$["_embedded"]["fields"]`, doc)
	if err != nil {
		return nil, nil
	}
	items, ok := found.([]any)
	if !ok {
		return nil, nil
	}

	out := make([]FieldRecord, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, fieldFromJSON(obj))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, error) {
	resp, err := c.exec.Get(ctx, endpoint, "application/json")
	if err != nil {
		return nil, unavailable(op, endpoint, err)
	}
	if !resp.OK() {
		return nil, unavailable(op, endpoint, fmt.Errorf("unexpected status %d", resp.Status))
	}
	return resp.Body, nil
}

func unavailable(op, endpoint string, cause error) error {
	return &domain.OpError{
		Op:    op,
		Kind:  domain.KindDirectoryUnavailable,
		Path:  endpoint,
		Cause: cause,
	}
}

// collectionValues returns the members of a JSON object (values, in key
// order) or array. null, absent and scalar collections are empty.
func collectionValues(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var out []json.RawMessage
		for dec.More() {
			if _, err := dec.Token(); err != nil { // key
				return nil, err
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		if _, err := dec.Token(); err != nil && err != io.EOF {
			return nil, err
		}
		return out, nil
	default:
		return nil, nil
	}
}

// idString keeps every non-null id. Booleans read True/False; arrays and
// objects keep their compact JSON text.
func idString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		if t {
			return "True", true
		}
		return "False", true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

func optionalString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
