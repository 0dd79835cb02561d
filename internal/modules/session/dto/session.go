package dto

import "time"

type SessionOutput struct {
	ID           string
	Subject      string
	MessageCount int
	CreatedAt    time.Time
}

type ResolveOutput struct {
	Session    SessionOutput
	Redirected bool
}

type SourceInput struct {
	ID         string
	FileName   string
	Title      string
	PageNumber int
	Relevance  float64
	Excerpt    string
	FilePath   string
}

type SourceOutput = SourceInput

type MessageInput struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time
	Sources   []SourceInput
}

type MessageOutput = MessageInput
