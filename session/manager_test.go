package session

import (
	"testing"
	"time"
)

func TestManagerPutGetDelete(t *testing.T) {
	m := NewManager(DefaultTTL)
	ledger := newPeriodLedger(t, "02/01/2024", "03/01/2024")

	m.Put(ledger)
	if m.Len() != 1 {
		t.Fatalf("got %d sessions, want 1", m.Len())
	}

	got, ok := m.Get(ledger.ID)
	if !ok || got != ledger {
		t.Fatalf("Get returned %v, %v", got, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get for unknown id must miss")
	}

	m.Delete(ledger.ID)
	if _, ok := m.Get(ledger.ID); ok {
		t.Error("session still resolvable after Delete")
	}
}

func TestManagerPurgeExpired(t *testing.T) {
	m := NewManager(time.Millisecond)
	m.Put(newPeriodLedger(t, "02/01/2024", "03/01/2024"))

	time.Sleep(5 * time.Millisecond)
	kept := newPeriodLedger(t, "04/01/2024", "05/01/2024")
	m.Put(kept)

	if purged := m.PurgeExpired(); purged != 1 {
		t.Fatalf("purged %d, want 1", purged)
	}
	if _, ok := m.Get(kept.ID); !ok {
		t.Error("fresh session purged")
	}
}
