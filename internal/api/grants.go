package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grantthrive/grantctl/internal/grant"
	"github.com/grantthrive/grantctl/internal/wizard"
)

// ID is a grant identifier. The API sends it as a number or a string.
type ID string

// UnmarshalJSON accepts numeric and string identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid grant id %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Grant is a grant record as returned by the API.
type Grant struct {
	ID                  ID           `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Category            string       `json:"category"`
	Amount              float64      `json:"amount"`
	TotalFunding        float64      `json:"totalFunding"`
	Status              grant.Status `json:"status"`
	OpensAt             string       `json:"opens_at"`
	ClosesAt            string       `json:"closes_at"`
	CreatedAt           string       `json:"created_at"`
	EligibilityCriteria string       `json:"eligibility_criteria"`
	ApplicationCount    int          `json:"application_count"`
}

// Funding returns the total funding of the grant.
func (g Grant) Funding() float64 {
	if g.TotalFunding > 0 {
		return g.TotalFunding
	}
	return g.Amount
}

// ListOptions filters ListGrants. Zero values are omitted.
type ListOptions struct {
	Status   grant.Status
	Category string
	Search   string
	Page     int
	PerPage  int
}

func (o ListOptions) query() string {
	q := url.Values{}
	if o.Status != "" {
		q.Set("status", string(o.Status))
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// GrantList is one page of grants.
type GrantList struct {
	Grants      []Grant `json:"grants"`
	Total       int     `json:"total"`
	Pages       int     `json:"pages"`
	CurrentPage int     `json:"current_page"`
	PerPage     int     `json:"per_page"`
}

// grantEnvelope covers the response shapes of the grant endpoints:
// {"grant": {...}}, {"success": true, "data": {...}} and a bare record.
type grantEnvelope struct {
	Success *bool        `json:"success"`
	Message string       `json:"message"`
	Grant   *Grant       `json:"grant"`
	Data    *Grant       `json:"data"`
	ID      ID           `json:"id"`
	Status  grant.Status `json:"status"`
}

func (e grantEnvelope) record() (Grant, error) {
	if e.Success != nil && !*e.Success {
		msg := e.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return Grant{}, &APIError{Status: http.StatusOK, Message: msg}
	}
	switch {
	case e.Grant != nil:
		return *e.Grant, nil
	case e.Data != nil:
		return *e.Data, nil
	default:
		return Grant{ID: e.ID, Status: e.Status}, nil
	}
}

// ListGrants returns one page of grants visible to the current user.
func (c *Client) ListGrants(ctx context.Context, opts ListOptions) (*GrantList, error) {
	var list GrantList
	if err := c.get(ctx, "list_grants", "/grants"+opts.query(), &list); err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return &list, nil
}

// GetGrant returns a single grant.
func (c *Client) GetGrant(ctx context.Context, id string) (*Grant, error) {
	var env grantEnvelope
	if err := c.get(ctx, "get_grant", "/grants/"+url.PathEscape(id), &env); err != nil {
		return nil, fmt.Errorf("get grant %s: %w", id, err)
	}
	g, err := env.record()
	if err != nil {
		return nil, fmt.Errorf("get grant %s: %w", id, err)
	}
	return &g, nil
}

// Categories returns the grant categories offered by the API.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.get(ctx, "categories", "/grants/categories", &resp); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return resp.Categories, nil
}

// submitRequest is the body of POST /grants.
type submitRequest struct {
	grant.Draft
	Status grant.Status `json:"status"`
}

// SaveDraft stores sub.Draft as a draft grant.
func (c *Client) SaveDraft(ctx context.Context, sub wizard.Submission) (wizard.Receipt, error) {
	return c.submit(ctx, "save_draft", sub)
}

// Publish submits sub.Draft for publication. With AutoPublish unset the
// grant enters pending review.
func (c *Client) Publish(ctx context.Context, sub wizard.Submission) (wizard.Receipt, error) {
	return c.submit(ctx, "publish", sub)
}

func (c *Client) submit(ctx context.Context, op string, sub wizard.Submission) (wizard.Receipt, error) {
	body := submitRequest{Draft: sub.Draft, Status: sub.Status()}
	if sub.Intent == wizard.IntentPublish {
		body.AutoPublish = sub.AutoPublish
	}

	header := http.Header{}
	if sub.IdempotencyKey != "" {
		header.Set("Idempotency-Key", sub.IdempotencyKey)
	}

	// Save and publish run under the wizard's submit timeout carried by ctx.
	var env grantEnvelope
	if err := c.send(ctx, op, "/grants", body, &env, header); err != nil {
		return wizard.Receipt{}, err
	}
	g, err := env.record()
	if err != nil {
		return wizard.Receipt{}, err
	}

	receipt := wizard.Receipt{ID: string(g.ID), Status: g.Status}
	if receipt.Status == "" {
		receipt.Status = sub.Status()
	}
	return receipt, nil
}

var _ wizard.Submitter = (*Client)(nil)
