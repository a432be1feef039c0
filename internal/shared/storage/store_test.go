package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railway/internal/shared/config"
	"railway/internal/shared/storage"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
)

func testStorageConfig(t *testing.T) config.StorageConfig {
	t.Helper()
	dir := t.TempDir()
	return config.StorageConfig{
		DataDir:     dir,
		TrainsFile:  filepath.Join(dir, "trains.json"),
		TicketsFile: filepath.Join(dir, "tickets.json"),
		WaitingFile: filepath.Join(dir, "waiting.json"),
		PNRFile:     filepath.Join(dir, "pnr.json"),
	}
}

func TestLoadAll_FirstRunIsEmpty(t *testing.T) {
	store := storage.NewStore(testStorageConfig(t), nil)

	trainList, ticketList, entries, lastPNR, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trainList)
	assert.Empty(t, ticketList)
	assert.Empty(t, entries)
	assert.Equal(t, 0, lastPNR)
}

func TestSaveAll_Roundtrip(t *testing.T) {
	cfg := testStorageConfig(t)
	store := storage.NewStore(cfg, nil)
	ctx := context.Background()

	trainList := []trains.Train{
		{ID: 101, Name: "Express A", From: "CITY1", To: "CITY2", TotalSeats: 5, BookedSeats: 2},
	}
	ticketList := []tickets.Ticket{
		{PNR: 1001, TrainID: 101, PassengerName: "A", Age: 30, SeatNo: 1, Status: tickets.StatusConfirmed},
		{PNR: 1002, TrainID: 101, PassengerName: "B", Age: 25, Status: tickets.StatusWaitlisted},
	}
	entries := []waitlist.Entry{
		{PNR: 1002, TrainID: 101, PassengerName: "B", Age: 25},
	}

	require.NoError(t, store.SaveAll(ctx, trainList, ticketList, entries, 1002))

	gotTrains, gotTickets, gotEntries, gotPNR, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, trainList, gotTrains)
	assert.Equal(t, ticketList, gotTickets)
	assert.Equal(t, entries, gotEntries)
	assert.Equal(t, 1002, gotPNR)
}

func TestSaveAll_CreatesDataDir(t *testing.T) {
	cfg := testStorageConfig(t)
	cfg.DataDir = filepath.Join(cfg.DataDir, "nested", "state")
	cfg.TrainsFile = filepath.Join(cfg.DataDir, "trains.json")
	cfg.TicketsFile = filepath.Join(cfg.DataDir, "tickets.json")
	cfg.WaitingFile = filepath.Join(cfg.DataDir, "waiting.json")
	cfg.PNRFile = filepath.Join(cfg.DataDir, "pnr.json")
	store := storage.NewStore(cfg, nil)

	require.NoError(t, store.SaveAll(context.Background(), nil, nil, nil, 1000))

	_, _, _, lastPNR, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000, lastPNR)
}

func TestLoadAll_MalformedFileTreatedAsAbsent(t *testing.T) {
	cfg := testStorageConfig(t)
	store := storage.NewStore(cfg, nil)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx,
		[]trains.Train{{ID: 101, TotalSeats: 5}}, nil, nil, 1005))
	require.NoError(t, os.WriteFile(cfg.TrainsFile, []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(cfg.PNRFile, []byte("garbage"), 0o644))

	trainList, _, _, lastPNR, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, trainList)
	assert.Equal(t, 0, lastPNR)
}

func TestSaveAll_Overwrites(t *testing.T) {
	cfg := testStorageConfig(t)
	store := storage.NewStore(cfg, nil)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx,
		[]trains.Train{{ID: 101, TotalSeats: 5}, {ID: 102, TotalSeats: 5}}, nil, nil, 1001))
	require.NoError(t, store.SaveAll(ctx,
		[]trains.Train{{ID: 101, TotalSeats: 5}}, nil, nil, 1002))

	trainList, _, _, lastPNR, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, trainList, 1)
	assert.Equal(t, 1002, lastPNR)
}
