package domain

import "time"

// PlaceholderSubject is the subject every freshly created session starts
// with. The first user message replaces it.
const PlaceholderSubject = "New chat"

const subjectRuneLimit = 32

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Session struct {
	ID           string
	Subject      string
	MessageCount int
	CreatedAt    time.Time
}

type Source struct {
	ID         string
	FileName   string
	Title      string
	PageNumber int
	Relevance  float64
	Excerpt    string
	FilePath   string
}

type Message struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time
	Sources   []Source
}

// NewSession fills in the placeholder subject when none is given.
func NewSession(id, subject string, createdAt time.Time) Session {
	if subject == "" {
		subject = PlaceholderSubject
	}
	return Session{ID: id, Subject: subject, CreatedAt: createdAt}
}

// SubjectFromContent derives a session subject from the first user
// message: at most 32 runes, with an ellipsis when truncated.
func SubjectFromContent(content string) string {
	runes := []rune(content)
	if len(runes) <= subjectRuneLimit {
		return content
	}
	return string(runes[:subjectRuneLimit]) + "..."
}

// HasPlaceholderSubject reports whether the session has never been
// renamed by a user message.
func (s Session) HasPlaceholderSubject() bool {
	return s.Subject == PlaceholderSubject
}
