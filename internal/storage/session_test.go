package storage_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/aliskhannn/state-capitals-bot/internal/storage"
)

func TestSessionStorage_StoreGetDelete(t *testing.T) {
	s := storage.NewSessionStorage()

	if _, err := s.Get(1); !errors.Is(err, storage.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	session := &storage.Session{MessageID: 42}
	s.Store(1, session)

	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != session {
		t.Error("Get returned a different session")
	}

	s.Delete(1)
	if _, err := s.Get(1); !errors.Is(err, storage.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after Delete, got %v", err)
	}
}

func TestSessionStorage_ConcurrentChats(t *testing.T) {
	s := storage.NewSessionStorage()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.Store(chatID, &storage.Session{})
			if _, err := s.Get(chatID); err != nil {
				t.Errorf("Get(%d): %v", chatID, err)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}

func TestSession_ResetSelection(t *testing.T) {
	session := &storage.Session{Selected: []bool{true, true}}

	session.ResetSelection(5)

	if len(session.Selected) != 5 {
		t.Fatalf("len(Selected) = %d, want 5", len(session.Selected))
	}
	for i, v := range session.Selected {
		if v {
			t.Errorf("Selected[%d] still set", i)
		}
	}
}
