// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/cardify/models"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore is an in-process [Store]. Sessions are kept JSON-encoded so
// that a loaded value never aliases the stored one.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Load implements [Store].
func (s *MemoryStore) Load(_ context.Context, id string) (models.Session, error) {
	if id == "" {
		return models.Session{}, ErrNotFound
	}

	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		s.dropExpired(id)
		return models.Session{}, ErrNotFound
	}

	var sess models.Session
	if err := json.Unmarshal(entry.data, &sess); err != nil {
		return models.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.ID = id

	return sess, nil
}

// dropExpired deletes id only if the entry is still expired once the write
// lock is held; a Save racing with Load may have replaced it.
func (s *MemoryStore) dropExpired(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[id]; ok && !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
	}
}

// Save implements [Store].
func (s *MemoryStore) Save(_ context.Context, id string, sess models.Session) error {
	if id == "" {
		return ErrEmptyID
	}
	if !s.now().Before(sess.ExpiresAt) {
		return ErrExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	s.mu.Lock()
	s.entries[id] = memoryEntry{data: data, expiresAt: sess.ExpiresAt}
	s.mu.Unlock()

	return nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()

	return nil
}

// Sweep removes every expired session and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
