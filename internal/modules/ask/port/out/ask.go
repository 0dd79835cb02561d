package out

import (
	"context"

	"campusqa/internal/modules/ask/domain"
)

// AnswerClient talks to the answer backend. Token may be empty; the
// adapter then sends the request unauthenticated.
type AnswerClient interface {
	Ask(ctx context.Context, question, course, semester, token string) (domain.Answer, error)
}
