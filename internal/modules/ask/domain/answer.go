package domain

import (
	"fmt"
	"strings"
	"time"
)

// Apology is the one message shown for any failed answer request. The
// cause is deliberately not surfaced; timeouts, 4xx and 5xx all read
// the same to the user.
const Apology = "Sorry, something went wrong while fetching the answer. Please try again."

// DefaultRelevance stands in when the backend omits a relevance score.
const DefaultRelevance = 0.85

// RawSource is a source record as the answer backend returns it. Field
// names arrive under one of two conventions depending on the backend
// revision, so both are accepted.
type RawSource struct {
	DocName    string   `json:"doc_name,omitempty"`
	FileName   string   `json:"fileName,omitempty"`
	Title      string   `json:"title,omitempty"`
	Page       int      `json:"page,omitempty"`
	PageNumber int      `json:"pageNumber,omitempty"`
	Relevance  *float64 `json:"relevance,omitempty"`
	Text       string   `json:"text,omitempty"`
	Excerpt    string   `json:"excerpt,omitempty"`
	SourcePath string   `json:"source_path,omitempty"`
	FilePath   string   `json:"filePath,omitempty"`
}

// Answer is a parsed backend response.
type Answer struct {
	Text    string
	Sources []RawSource
}

// Source is the canonical citation shape attached to an assistant
// message.
type Source struct {
	ID         string
	FileName   string
	Title      string
	PageNumber int
	Relevance  float64
	Excerpt    string
	FilePath   string
}

// NormalizeSources maps raw backend sources into canonical ones. IDs
// are positional within the answer's source list.
func NormalizeSources(sessionID string, raws []RawSource) []Source {
	sources := make([]Source, 0, len(raws))
	for i, raw := range raws {
		sources = append(sources, normalize(fmt.Sprintf("%s-src-%d", sessionID, i), raw))
	}
	return sources
}

func normalize(id string, raw RawSource) Source {
	fileName := raw.DocName
	if fileName == "" {
		fileName = raw.FileName
	}

	title := raw.Title
	if title == "" {
		title = strings.TrimSuffix(fileName, ".pdf")
	}

	page := raw.Page
	if page == 0 {
		page = raw.PageNumber
	}

	relevance := DefaultRelevance
	if raw.Relevance != nil {
		relevance = clamp01(*raw.Relevance)
	}

	excerpt := raw.Text
	if excerpt == "" {
		excerpt = raw.Excerpt
	}

	filePath := raw.SourcePath
	if filePath == "" {
		filePath = raw.FilePath
	}

	return Source{
		ID:         id,
		FileName:   fileName,
		Title:      title,
		PageNumber: page,
		Relevance:  relevance,
		Excerpt:    excerpt,
		FilePath:   filePath,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NormalizeSemester guarantees the "Sem-" prefix the backend expects,
// whether the caller passes "3" or "Sem-3".
func NormalizeSemester(n string) string {
	if strings.HasPrefix(n, "Sem-") {
		return n
	}
	return "Sem-" + n
}

// Message ids follow the transcript convention the whole app keys on:
// unix milliseconds plus a role suffix.

func UserMessageID(now time.Time) string {
	return fmt.Sprintf("%d-user", now.UnixMilli())
}

func AssistantMessageID(now time.Time) string {
	return fmt.Sprintf("%d-ai", now.UnixMilli())
}

func ErrorMessageID(now time.Time) string {
	return fmt.Sprintf("%d-error", now.UnixMilli())
}
