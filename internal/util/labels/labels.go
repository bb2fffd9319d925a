package labels

import (
	"maps"
	"strconv"
	"strings"
)

// Standard metadata keys for archived drafts.
const (
	// KeyManagedBy identifies the tool that wrote the object
	KeyManagedBy = "grantctl-managed-by"

	// KeyCategory is the grant category of the draft
	KeyCategory = "grantctl-category"

	// KeySlug is the slug of the draft title
	KeySlug = "grantctl-slug"

	// KeyAutoPublish records whether publishing skips review
	KeyAutoPublish = "grantctl-auto-publish"
)

// ManagedByGrantctl is the KeyManagedBy value written by this tool.
const ManagedByGrantctl = "grantctl"

// LabelBuilder provides a fluent interface for building object metadata.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new label builder with the manager pre-set.
func NewLabelBuilder() *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyManagedBy: ManagedByGrantctl,
		},
	}
}

// WithCategory adds the category label. Empty categories are skipped.
func (lb *LabelBuilder) WithCategory(category string) *LabelBuilder {
	if category != "" {
		lb.labels[KeyCategory] = asciiOnly(category)
	}
	return lb
}

// WithSlug adds the title slug.
func (lb *LabelBuilder) WithSlug(slug string) *LabelBuilder {
	lb.labels[KeySlug] = slug
	return lb
}

// WithAutoPublish records the publish mode.
func (lb *LabelBuilder) WithAutoPublish(v bool) *LabelBuilder {
	lb.labels[KeyAutoPublish] = strconv.FormatBool(v)
	return lb
}

// Merge adds all labels from the provided map.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	maps.Copy(lb.labels, extra)
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	return maps.Clone(lb.labels)
}

// asciiOnly drops bytes that cannot travel in an HTTP header value.
func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, s)
}
