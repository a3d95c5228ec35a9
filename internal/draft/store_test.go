package draft

import "testing"

func TestStorePatchOrderAndNotify(t *testing.T) {
	s := NewStore()

	var seen []int
	cancel := s.Subscribe(func(d Draft) { seen = append(seen, d.TicketRemaining) })
	defer cancel()

	s.Patch(func(d Draft) Draft { d.TicketRemaining = 3; return d })
	s.Patch(func(d Draft) Draft { d.TicketRemaining = 2; return d })

	if got := s.Get().TicketRemaining; got != 2 {
		t.Fatalf("TicketRemaining = %d, want 2", got)
	}
	if len(seen) != 2 || seen[0] != 3 || seen[1] != 2 {
		t.Fatalf("notifications out of order: %v", seen)
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Patch(func(d Draft) Draft { d.DepositWon = won(50000); return d })

	snap := s.Get()
	*snap.DepositWon = 999

	if got := s.Get(); got.DepositWon == nil || *got.DepositWon != 50000 {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	s.Patch(func(d Draft) Draft {
		d = WithPurpose(d, PurposeWolse)
		d.DepositWon = won(100)
		d.TicketRemaining = 0
		return d
	})
	s.Reset()

	got := s.Get()
	if got.Purpose != PurposeJeonse || got.DepositWon != nil || got.TicketRemaining != 1 {
		t.Fatalf("reset did not restore defaults: %+v", got)
	}
}

func TestStoreNewSessionKeepsTicketBalance(t *testing.T) {
	s := NewStore()
	s.Patch(func(d Draft) Draft {
		d.DepositWon = won(100)
		return ConsumeTicket(d)
	})
	s.NewSession()

	got := s.Get()
	if got.DepositWon != nil {
		t.Fatal("new session must discard wizard fields")
	}
	if got.TicketRemaining != 0 {
		t.Fatalf("TicketRemaining = %d, want 0 (spent ticket stays spent)", got.TicketRemaining)
	}
}

func TestStoreUnsubscribeIsIdempotent(t *testing.T) {
	s := NewStore()
	calls := 0
	cancel := s.Subscribe(func(Draft) { calls++ })
	s.Patch(func(d Draft) Draft { return d })
	cancel()
	cancel()
	s.Patch(func(d Draft) Draft { return d })
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
