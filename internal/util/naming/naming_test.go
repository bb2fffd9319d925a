package naming

import (
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	t.Parallel()
	tests := []struct {
		title string
		want  string
	}{
		{"Community Garden Grants", "community-garden-grants"},
		{"  Youth Arts & Culture (2026)! ", "youth-arts-culture-2026"},
		{"Café Fund", "caf-fund"},
		{"", Untitled},
		{"***", Untitled},
	}

	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDraftSnapshot(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, time.March, 4, 21, 0, 5, 0, time.FixedZone("AEDT", 11*3600))

	tests := []struct {
		name   string
		prefix string
		title  string
		want   string
	}{
		{"simple", "drafts/", "Community Garden Grants", "drafts/community-garden-grants/20260304T100005Z.yaml"},
		{"no prefix", "", "Community Garden Grants", "community-garden-grants/20260304T100005Z.yaml"},
		{"empty title", "drafts/", "", "drafts/untitled/20260304T100005Z.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DraftSnapshot(tt.prefix, tt.title, at); got != tt.want {
				t.Errorf("DraftSnapshot() = %q, want %q", got, tt.want)
			}
		})
	}
}
