package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"railway/internal/shared/config"
	"railway/internal/tickets"
	"railway/internal/trains"
	"railway/internal/waitlist"
	"railway/pkg/logger"
)

// Store persists the four pieces of reservation state as JSON flat files in
// the data directory. Every save is a whole-collection overwrite; loads treat
// missing or malformed files as absent state rather than errors, so a corrupt
// file costs the data in that file but never the session.
type Store struct {
	cfg    config.StorageConfig
	logger *logger.Logger
}

// pnrState is the on-disk shape of the PNR counter
type pnrState struct {
	LastPNR int `json:"last_pnr"`
}

// NewStore creates a store rooted at the configured data directory
func NewStore(cfg config.StorageConfig, log *logger.Logger) *Store {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Store{
		cfg:    cfg,
		logger: log,
	}
}

// LoadAll reads all persisted state. Missing or unreadable files come back as
// empty collections and a zero PNR counter; the caller applies its floor.
func (s *Store) LoadAll(ctx context.Context) ([]trains.Train, []tickets.Ticket, []waitlist.Entry, int, error) {
	var (
		trainList  []trains.Train
		ticketList []tickets.Ticket
		entries    []waitlist.Entry
		pnr        pnrState
	)

	if !s.loadFile(ctx, s.cfg.TrainsFile, &trainList) {
		trainList = nil
	}
	if !s.loadFile(ctx, s.cfg.TicketsFile, &ticketList) {
		ticketList = nil
	}
	if !s.loadFile(ctx, s.cfg.WaitingFile, &entries) {
		entries = nil
	}
	if !s.loadFile(ctx, s.cfg.PNRFile, &pnr) {
		pnr.LastPNR = 0
	}

	return trainList, ticketList, entries, pnr.LastPNR, nil
}

// SaveAll overwrites all four state files
func (s *Store) SaveAll(ctx context.Context, trainList []trains.Train, ticketList []tickets.Ticket, entries []waitlist.Entry, lastPNR int) error {
	if err := os.MkdirAll(s.cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := s.saveFile(s.cfg.TrainsFile, trainList); err != nil {
		return err
	}
	if err := s.saveFile(s.cfg.TicketsFile, ticketList); err != nil {
		return err
	}
	if err := s.saveFile(s.cfg.WaitingFile, entries); err != nil {
		return err
	}
	if err := s.saveFile(s.cfg.PNRFile, pnrState{LastPNR: lastPNR}); err != nil {
		return err
	}

	s.logger.LogStateSaved(ctx, len(trainList), len(ticketList), len(entries))
	return nil
}

// loadFile decodes one JSON file into dst. Returns false when the file is
// missing or malformed so the caller can fall back to absent state.
func (s *Store) loadFile(ctx context.Context, path string, dst interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.LogStateLoadWarning(ctx, path, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.LogStateLoadWarning(ctx, path, err)
		return false
	}
	return true
}

// saveFile writes JSON to a temp file in the same directory and renames it
// into place
func (s *Store) saveFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
