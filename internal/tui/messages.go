package tui

import (
	"github.com/zikim/zikim/internal/database/repository"
	"github.com/zikim/zikim/internal/issue"
)

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// searchTickMsg fires when the address-search debounce window closes. Seq
// identifies the keystroke that armed it; a stale tick is ignored.
type searchTickMsg struct{ seq int }

type addressResultsMsg struct {
	seq   int
	items []repository.Address
}

type issueEventMsg issue.Event

// issueDoneMsg carries the persisted report and its advisor opinion once a
// successful issuance has been recorded.
type issueDoneMsg struct {
	rep     repository.Report
	opinion string
}

type historyMsg []repository.Report
