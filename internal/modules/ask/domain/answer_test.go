package domain

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeSourcesBackendConvention(t *testing.T) {
	t.Parallel()

	raws := []RawSource{{
		DocName:   "DSA_Module_1.pdf",
		Page:      27,
		Relevance: floatPtr(0.95),
		Text:      "An array is...",
	}}

	sources := NormalizeSources("sess-1", raws)
	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	src := sources[0]
	if src.ID != "sess-1-src-0" {
		t.Errorf("id = %q, want sess-1-src-0", src.ID)
	}
	if src.FileName != "DSA_Module_1.pdf" {
		t.Errorf("fileName = %q", src.FileName)
	}
	if src.Title != "DSA_Module_1" {
		t.Errorf("title = %q, want DSA_Module_1", src.Title)
	}
	if src.PageNumber != 27 {
		t.Errorf("pageNumber = %d, want 27", src.PageNumber)
	}
	if src.Relevance != 0.95 {
		t.Errorf("relevance = %v, want 0.95", src.Relevance)
	}
	if src.Excerpt != "An array is..." {
		t.Errorf("excerpt = %q", src.Excerpt)
	}
}

func TestNormalizeSourcesCamelCaseConvention(t *testing.T) {
	t.Parallel()

	raws := []RawSource{{
		FileName:   "OS_Module_3.pdf",
		PageNumber: 12,
		Excerpt:    "A deadlock occurs when...",
		FilePath:   "docs/OS_Module_3.pdf",
	}}

	src := NormalizeSources("sess-9", raws)[0]
	if src.FileName != "OS_Module_3.pdf" {
		t.Errorf("fileName = %q", src.FileName)
	}
	if src.PageNumber != 12 {
		t.Errorf("pageNumber = %d, want 12", src.PageNumber)
	}
	if src.Excerpt != "A deadlock occurs when..." {
		t.Errorf("excerpt = %q", src.Excerpt)
	}
	if src.FilePath != "docs/OS_Module_3.pdf" {
		t.Errorf("filePath = %q", src.FilePath)
	}
}

func TestNormalizeSourcesDefaultsAndClamp(t *testing.T) {
	t.Parallel()

	raws := []RawSource{
		{DocName: "a.pdf"},                            // relevance absent
		{DocName: "b.pdf", Relevance: floatPtr(1.7)},  // above range
		{DocName: "c.pdf", Relevance: floatPtr(-0.3)}, // below range
	}

	sources := NormalizeSources("s", raws)
	if sources[0].Relevance != DefaultRelevance {
		t.Errorf("default relevance = %v, want %v", sources[0].Relevance, DefaultRelevance)
	}
	if sources[1].Relevance != 1 {
		t.Errorf("clamped high = %v, want 1", sources[1].Relevance)
	}
	if sources[2].Relevance != 0 {
		t.Errorf("clamped low = %v, want 0", sources[2].Relevance)
	}
	if sources[0].Excerpt != "" {
		t.Errorf("missing excerpt = %q, want empty", sources[0].Excerpt)
	}
	if sources[1].ID != "s-src-1" || sources[2].ID != "s-src-2" {
		t.Errorf("positional ids = %q, %q", sources[1].ID, sources[2].ID)
	}
}

func TestNormalizeSourcesExplicitTitleWins(t *testing.T) {
	t.Parallel()

	src := NormalizeSources("s", []RawSource{{DocName: "x.pdf", Title: "Custom Title"}})[0]
	if src.Title != "Custom Title" {
		t.Errorf("title = %q, want Custom Title", src.Title)
	}
}

func TestNormalizeSemester(t *testing.T) {
	t.Parallel()

	if got := NormalizeSemester("3"); got != "Sem-3" {
		t.Errorf("NormalizeSemester(3) = %q", got)
	}
	if got := NormalizeSemester("Sem-3"); got != "Sem-3" {
		t.Errorf("NormalizeSemester(Sem-3) = %q", got)
	}
}

func TestMessageIDs(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000000)
	if got := UserMessageID(at); got != "1700000000000-user" {
		t.Errorf("user id = %q", got)
	}
	if got := AssistantMessageID(at); got != "1700000000000-ai" {
		t.Errorf("assistant id = %q", got)
	}
	if got := ErrorMessageID(at); got != "1700000000000-error" {
		t.Errorf("error id = %q", got)
	}
}
