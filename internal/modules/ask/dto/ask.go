package dto

import sessiondto "campusqa/internal/modules/session/dto"

type BeginOutput struct {
	SessionID   string
	UserMessage sessiondto.MessageOutput
}

type ResultOutput struct {
	SessionID string
	Message   sessiondto.MessageOutput
	Failed    bool
	// Dropped is set when the result arrived for a session that no
	// longer exists; nothing was appended anywhere.
	Dropped bool
}
