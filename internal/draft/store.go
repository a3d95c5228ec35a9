package draft

import "sync"

// Store owns exactly one Draft for the lifetime of a wizard session and
// broadcasts every change to subscribers. It is constructor-injected into
// each screen rather than looked up ambiently, so a test (or a second
// session) gets its own isolated instance.
//
// The wizard has a single writer at a time; the mutex only protects the
// subscriber list and snapshot reads from background commands.
type Store struct {
	mu   sync.Mutex
	d    Draft
	subs map[int]func(Draft)
	next int
}

// NewStore returns a store initialized with Default().
func NewStore() *Store {
	return &Store{d: Default(), subs: map[int]func(Draft){}}
}

// Get returns the current snapshot. Pointer fields are value-copied so the
// caller cannot mutate the stored draft through them.
func (s *Store) Get() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDraft(s.d)
}

// Patch applies fn to the current draft and notifies subscribers. Updates
// are applied in call order; fn sees a snapshot and returns the full next
// draft, so multi-field changes (purpose switch, address selection) are
// atomic from every reader's perspective.
func (s *Store) Patch(fn func(Draft) Draft) {
	s.mu.Lock()
	s.d = cloneDraft(fn(cloneDraft(s.d)))
	snapshot := cloneDraft(s.d)
	fns := make([]func(Draft), 0, len(s.subs))
	for _, f := range s.subs {
		fns = append(fns, f)
	}
	s.mu.Unlock()

	for _, f := range fns {
		f(snapshot)
	}
}

// Reset restores Default().
func (s *Store) Reset() {
	s.Patch(func(Draft) Draft { return Default() })
}

// NewSession discards the wizard fields but carries the ticket balance into
// the fresh draft, so a spent ticket stays spent across sessions.
func (s *Store) NewSession() {
	s.Patch(func(d Draft) Draft {
		next := Default()
		next.TicketRemaining = d.TicketRemaining
		return next
	})
}

// Subscribe registers fn to run after every patch. The returned cancel is
// idempotent.
func (s *Store) Subscribe(fn func(Draft)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func cloneDraft(d Draft) Draft {
	d.DepositWon = cloneInt64(d.DepositWon)
	d.MonthlyRentWon = cloneInt64(d.MonthlyRentWon)
	d.SalePriceWon = cloneInt64(d.SalePriceWon)
	d.ContractPeriodYears = cloneInt(d.ContractPeriodYears)
	return d
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
