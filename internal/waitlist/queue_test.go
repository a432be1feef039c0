package waitlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway/internal/waitlist"
)

func TestEnqueue_CapacityCeiling(t *testing.T) {
	q := waitlist.NewQueue(2)

	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1002, TrainID: 1}))
	assert.False(t, q.HasRoom())

	err := q.Enqueue(waitlist.Entry{PNR: 1003, TrainID: 1})
	assert.ErrorIs(t, err, waitlist.ErrWaitingListFull)
	assert.Equal(t, 2, q.Len())
}

func TestDequeueFirstForTrain_SkipsOtherTrains(t *testing.T) {
	q := waitlist.NewQueue(10)

	// Entries for trains 1, 2, 1 in that order.
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1, PassengerName: "A"}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1002, TrainID: 2, PassengerName: "B"}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1003, TrainID: 1, PassengerName: "C"}))

	got := q.DequeueFirstForTrain(2)
	require.NotNil(t, got)
	assert.Equal(t, 1002, got.PNR)

	// The two train-1 entries keep their original relative order.
	rest := q.Snapshot()
	require.Len(t, rest, 2)
	assert.Equal(t, 1001, rest[0].PNR)
	assert.Equal(t, 1003, rest[1].PNR)
}

func TestDequeueFirstForTrain_FIFOWithinTrain(t *testing.T) {
	q := waitlist.NewQueue(10)

	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1002, TrainID: 1}))

	first := q.DequeueFirstForTrain(1)
	require.NotNil(t, first)
	assert.Equal(t, 1001, first.PNR)

	second := q.DequeueFirstForTrain(1)
	require.NotNil(t, second)
	assert.Equal(t, 1002, second.PNR)

	assert.Nil(t, q.DequeueFirstForTrain(1))
}

func TestDequeueFirstForTrain_NoMatch(t *testing.T) {
	q := waitlist.NewQueue(10)
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1}))

	assert.Nil(t, q.DequeueFirstForTrain(99))
	assert.Equal(t, 1, q.Len())
}

func TestRemoveByPNR(t *testing.T) {
	q := waitlist.NewQueue(10)
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1002, TrainID: 1}))
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1003, TrainID: 2}))

	assert.True(t, q.RemoveByPNR(1002))
	assert.False(t, q.RemoveByPNR(1002))

	rest := q.Snapshot()
	require.Len(t, rest, 2)
	assert.Equal(t, 1001, rest[0].PNR)
	assert.Equal(t, 1003, rest[1].PNR)
}

func TestSnapshot_IsACopy(t *testing.T) {
	q := waitlist.NewQueue(10)
	require.NoError(t, q.Enqueue(waitlist.Entry{PNR: 1001, TrainID: 1}))

	snap := q.Snapshot()
	snap[0].PNR = 9999

	assert.Equal(t, 1001, q.Snapshot()[0].PNR)
}
