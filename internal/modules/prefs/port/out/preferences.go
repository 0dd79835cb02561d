package out

import (
	"context"

	"campusqa/internal/modules/prefs/domain"
)

// Store persists preferences between runs. Load returns defaults when
// nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, p domain.Preferences) error
}
