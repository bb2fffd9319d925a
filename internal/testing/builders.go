package testing

import (
	"time"

	"github.com/grantthrive/grantctl/internal/grant"
)

// DraftBuilder provides a fluent interface for constructing test drafts.
// Each method returns a new builder (immutable) for chaining.
type DraftBuilder struct {
	d grant.Draft
}

// NewDraftBuilder creates a DraftBuilder whose draft passes every step.
func NewDraftBuilder() *DraftBuilder {
	d := grant.NewDraft()
	d.Title = "Community Garden Grants"
	d.Category = grant.CategoryCommunityDevelopment
	d.Description = "Seed funding for community gardens."
	d.EligibilityCriteria = "Incorporated not-for-profits."
	d.TotalFunding = 50000
	d.MaxApplicationAmount = 5000
	d.ApplicationOpenDate = grant.NewDate(2026, time.March, 1)
	d.ApplicationCloseDate = grant.NewDate(2026, time.April, 15)
	d = d.AddReviewer(grant.NewReviewer("Ana Lee", "ana@council.gov.au"))
	return &DraftBuilder{d: d}
}

// WithTitle sets the grant title.
func (b *DraftBuilder) WithTitle(title string) *DraftBuilder {
	nb := b.clone()
	nb.d.Title = title
	return nb
}

// WithCategory sets the grant category.
func (b *DraftBuilder) WithCategory(c grant.Category) *DraftBuilder {
	nb := b.clone()
	nb.d.Category = c
	return nb
}

// WithFunding sets the total funding and the per-application maximum.
func (b *DraftBuilder) WithFunding(total, maxAmount float64) *DraftBuilder {
	nb := b.clone()
	nb.d.TotalFunding = total
	nb.d.MaxApplicationAmount = maxAmount
	return nb
}

// WithDates sets the application window.
func (b *DraftBuilder) WithDates(open, closes grant.Date) *DraftBuilder {
	nb := b.clone()
	nb.d.ApplicationOpenDate = open
	nb.d.ApplicationCloseDate = closes
	return nb
}

// WithQuestion adds a custom application question.
func (b *DraftBuilder) WithQuestion(prompt string, required bool) *DraftBuilder {
	q := grant.NewQuestion(prompt)
	q.Required = required
	nb := b.clone()
	nb.d = nb.d.AddQuestion(q)
	return nb
}

// WithReviewer adds a review committee member.
func (b *DraftBuilder) WithReviewer(name, email string) *DraftBuilder {
	nb := b.clone()
	nb.d = nb.d.AddReviewer(grant.NewReviewer(name, email))
	return nb
}

// WithoutReviewers empties the review committee, which blocks publishing.
func (b *DraftBuilder) WithoutReviewers() *DraftBuilder {
	nb := b.clone()
	nb.d.ReviewCommittee = nil
	return nb
}

// WithAutoPublish sets whether publishing skips review.
func (b *DraftBuilder) WithAutoPublish(v bool) *DraftBuilder {
	nb := b.clone()
	nb.d.AutoPublish = v
	return nb
}

// Build returns a copy of the constructed draft.
func (b *DraftBuilder) Build() grant.Draft {
	return b.d.Clone()
}

func (b *DraftBuilder) clone() *DraftBuilder {
	return &DraftBuilder{d: b.d.Clone()}
}

// ReadyDraft returns a draft that passes validation on every step.
func ReadyDraft() grant.Draft {
	return NewDraftBuilder().Build()
}
