package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tikang-admin/internal/models"
)

// FileSessionRepository stores the session as a JSON file with 0600
// permissions, the usual arrangement for CLI credentials.
type FileSessionRepository struct {
	path string
	ttl  time.Duration
}

func NewFileSessionRepository(path string, ttl time.Duration) *FileSessionRepository {
	return &FileSessionRepository{path: path, ttl: ttl}
}

// DefaultSessionPath resolves ~/.tikang-admin/session.json.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tikang-admin", "session.json"), nil
}

func (r *FileSessionRepository) Get(ctx context.Context) (*models.Session, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("session path is a directory: %s", r.path)
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var session models.Session
	if err := json.NewDecoder(file).Decode(&session); err != nil {
		return nil, err
	}
	if r.ttl > 0 && !session.SavedAt.IsZero() && time.Since(session.SavedAt) > r.ttl {
		return nil, nil
	}
	return &session, nil
}

func (r *FileSessionRepository) Set(ctx context.Context, session *models.Session) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}

	file, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(session)
}

func (r *FileSessionRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
