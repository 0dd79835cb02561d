package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"campusqa/internal/modules/prefs/domain"
	prefsout "campusqa/internal/modules/prefs/port/out"
)

// FileStore keeps preferences in a YAML file under the app home dir so
// they are easy to inspect and edit by hand.
type FileStore struct {
	path string
}

func NewFileStore(path string) prefsout.Store {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (domain.Preferences, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Defaults(), nil
		}
		return domain.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	prefs := domain.Defaults()
	if err := yaml.Unmarshal(payload, &prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	// Backfill fields a hand-edited file may have dropped.
	if prefs.Course == "" {
		prefs.Course = domain.DefaultCourse
	}
	if prefs.SemesterNumber == "" {
		prefs.SemesterNumber = domain.DefaultSemesterNumber
	}
	if prefs.Theme == "" {
		prefs.Theme = domain.DefaultTheme
	}
	return prefs, nil
}

func (s *FileStore) Save(_ context.Context, p domain.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	payload, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
