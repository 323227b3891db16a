package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	log, err := Open(filepath.Join(t.TempDir(), "nested", "audit.db"))
	require.NoError(t, err)
	defer log.Close()

	ctx := context.Background()
	base := time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, log.Record(ctx, Entry{
			At:       base.Add(time.Duration(i) * time.Minute),
			Actor:    "admin@tikang.example",
			Action:   "accept_payment",
			Target:   "booking",
			TargetID: int64(40 + i),
			Outcome:  OutcomeSuccess,
		}))
	}
	require.NoError(t, log.Record(ctx, Entry{
		At:      base.Add(time.Hour),
		Actor:   "admin@tikang.example",
		Action:  "block_user",
		Target:  "user",
		Outcome: OutcomeFailure,
		Message: "User already blocked",
	}))

	entries, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "block_user", entries[0].Action)
	assert.Equal(t, OutcomeFailure, entries[0].Outcome)
	assert.Equal(t, "User already blocked", entries[0].Message)
	assert.Equal(t, int64(42), entries[1].TargetID, "newest first")
	assert.NotEmpty(t, entries[0].ID, "id generated when absent")
}

func TestRecentLimit(t *testing.T) {
	log, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	defer log.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, log.Record(ctx, Entry{
			Actor: "a", Action: "verify_property", Target: "property", Outcome: OutcomeSuccess,
		}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
