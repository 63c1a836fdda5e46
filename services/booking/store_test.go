package booking

import (
	"context"
	"testing"
	"time"

	"sainandadeep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &models.BookingSession{
		ID:            "s1",
		RoomID:        "1",
		Step:          models.StepDetails,
		TransactionID: "SN-TEST00001",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, store.Set(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session.TransactionID, got.TransactionID)

	// The store hands out copies; mutating one must not leak into the store.
	got.Step = models.StepSuccess
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepDetails, again.Step)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.Equal(t, CodeSessionNotFound, ErrorCode(err))
}
