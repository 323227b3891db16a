package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tikang-admin/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *models.Session {
	return &models.Session{
		Token: "tok-abc",
		Admin: &models.Admin{UserID: 1, FullName: "Tikang Admin", Email: "admin@tikang.example"},
	}
}

func TestMemorySessionRepository(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, testSession()))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-abc", got.Token)
	assert.Equal(t, int64(1), got.Admin.UserID)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionRepositoryTTL(t *testing.T) {
	repo := NewMemorySessionRepository(time.Millisecond)
	ctx := context.Background()

	session := testSession()
	session.SavedAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Set(ctx, session))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session should read as absent")
}

func TestFileSessionRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo := NewFileSessionRepository(path, time.Hour)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, testSession()))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-abc", got.Token)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx)) // idempotent

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSessionRepository(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	repo := NewRedisSessionRepository(client, time.Hour)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, testSession()))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-abc", got.Token)

	s.FastForward(2 * time.Hour)
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "redis TTL should expire the session")

	require.NoError(t, repo.Set(ctx, testSession()))
	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

type failingRepo struct{ err error }

func (f *failingRepo) Get(ctx context.Context) (*models.Session, error) { return nil, f.err }
func (f *failingRepo) Set(ctx context.Context, s *models.Session) error { return f.err }
func (f *failingRepo) Clear(ctx context.Context) error                  { return f.err }

func TestFailoverSessionRepository(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	primary := &failingRepo{err: errors.New("connection refused")}
	fallback := NewMemorySessionRepository(time.Hour)
	repo := NewFailoverSessionRepository(primary, fallback, &logger)

	// Write goes to the fallback even though the primary fails.
	require.NoError(t, repo.Set(ctx, testSession()))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-abc", got.Token)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFailoverPrefersHealthyPrimary(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	primary := NewMemorySessionRepository(time.Hour)
	fallback := NewMemorySessionRepository(time.Hour)
	repo := NewFailoverSessionRepository(primary, fallback, &logger)

	require.NoError(t, repo.Set(ctx, testSession()))

	got, err := primary.Get(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got, "healthy primary should hold the session")
}
