package tui

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zikim/zikim/internal/config"
	"github.com/zikim/zikim/internal/database"
	"github.com/zikim/zikim/internal/database/repository"
	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/issue"
	"github.com/zikim/zikim/internal/llm"
	"github.com/zikim/zikim/internal/service"
)

// fakeScheduler fires callbacks when Advance moves the clock past their
// deadline, so issuance timers run without real time passing.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) issue.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return stopFn{s, t}
}

type stopFn struct {
	s *fakeScheduler
	t *fakeTimer
}

func (f stopFn) Stop() {
	f.s.mu.Lock()
	f.t.stopped = true
	f.s.mu.Unlock()
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	due := []*fakeTimer{}
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	s.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

func newTestApp(t *testing.T) (*App, *fakeScheduler) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repos := Repos{
		Addresses: repository.NewAddressRepo(db),
		Reports:   repository.NewReportRepo(db),
	}
	log := zap.NewNop()
	services := Services{
		Address: &service.AddressService{Addresses: repos.Addresses, Log: log},
		Issue:   &service.IssueService{DB: db, Reports: repos.Reports, Log: log},
		History: &service.HistoryService{Reports: repos.Reports},
	}
	cfg := config.Config{Issue: config.IssueConfig{
		SlowAfter: 1500 * time.Millisecond,
		DoneAfter: 3 * time.Second,
	}}
	sched := &fakeScheduler{}
	app := New(context.Background(), cfg, draft.NewStore(), repos, services, llm.NewHeuristicAdvisor(), sched, log)
	t.Cleanup(app.closeMachine)
	return app, sched
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.Update(msg)
	require.Same(t, a, next)
	return cmd
}

func press(t *testing.T, a *App, key string) tea.Cmd {
	t.Helper()
	return apply(t, a, keyMsg(key))
}

func typeText(t *testing.T, a *App, input string) {
	t.Helper()
	for _, r := range input {
		press(t, a, string(r))
	}
}

// runSearch executes the pending address search synchronously, bypassing the
// debounce tick.
func runSearch(t *testing.T, a *App) {
	t.Helper()
	msg := a.searchCmd(a.searchSeq, a.queryInput.Value())()
	apply(t, a, msg)
}

// driveToPay walks home -> trade -> address and leaves the app on the pay
// screen with a 전세 draft for a multi-unit building.
func driveToPay(t *testing.T, a *App) {
	t.Helper()
	press(t, a, "enter")
	require.Equal(t, screenTrade, a.screen)

	press(t, a, "down") // deposit row
	typeText(t, a, "200000000")
	d := a.store.Get()
	require.NotNil(t, d.DepositWon)
	require.Equal(t, int64(200_000_000), *d.DepositWon)

	press(t, a, "down") // period row
	press(t, a, "right")
	require.Equal(t, draft.PeriodOneYear, a.store.Get().ContractPeriodType)

	press(t, a, "enter")
	require.Equal(t, screenAddress, a.screen)

	typeText(t, a, "역삼")
	runSearch(t, a)
	require.Len(t, a.results, 1)

	press(t, a, "enter") // select the highlighted address
	require.NotNil(t, a.selected)
	require.True(t, a.selected.RequiresUnit)
	require.Equal(t, "서울시 강남구 역삼로 123", a.store.Get().AddressSelected)

	press(t, a, "right") // dong
	press(t, a, "tab")
	press(t, a, "right") // ho
	d = a.store.Get()
	require.NotEmpty(t, d.UnitDong)
	require.NotEmpty(t, d.UnitHo)

	press(t, a, "enter")
	require.Equal(t, screenPay, a.screen)
}

// fillPay selects a card, the given plan, and both required agreements.
func fillPay(t *testing.T, a *App, plan draft.PaymentPlan) {
	t.Helper()
	press(t, a, "right") // card
	require.GreaterOrEqual(t, a.cardCursor, 0)

	press(t, a, "down")
	press(t, a, "right") // first plan
	for a.store.Get().PaymentPlan != plan {
		press(t, a, "right")
	}

	press(t, a, "down")
	press(t, a, "space")
	press(t, a, "down")
	press(t, a, "space")
	require.True(t, a.agreements[0])
	require.True(t, a.agreements[1])
}

// settle consumes pending machine events until the issuance completes and
// the report screen is shown.
func settle(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < 8; i++ {
		msg := a.waitIssueCmd()()
		cmd := apply(t, a, msg)
		if a.issueState == issue.StateDone {
			require.NotNil(t, cmd)
			apply(t, a, cmd())
			return
		}
	}
	t.Fatal("issuance did not complete")
}

func TestWizardHappyPath(t *testing.T) {
	a, sched := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanOnce)

	press(t, a, "enter")
	require.Equal(t, screenIssuing, a.screen)
	require.NotNil(t, a.machine)

	apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateInProgress, a.issueState)

	sched.Advance(1500 * time.Millisecond)
	apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateSlow, a.issueState)

	sched.Advance(1500 * time.Millisecond)
	settle(t, a)

	require.Equal(t, screenReport, a.screen)
	require.NotEmpty(t, a.rep.ID)
	require.Equal(t, "전세 2억", a.rep.PriceLine)
	require.NotEmpty(t, a.opinion)

	// a paid plan leaves the ticket balance alone
	require.Equal(t, 1, a.store.Get().TicketRemaining)

	list, err := a.services.History.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestWizardTicketPlanConsumesTicket(t *testing.T) {
	a, sched := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanTicket)

	press(t, a, "enter")
	require.Equal(t, screenIssuing, a.screen)
	apply(t, a, a.waitIssueCmd()())

	sched.Advance(3 * time.Second)
	settle(t, a)

	require.Equal(t, screenReport, a.screen)
	require.Equal(t, 0, a.store.Get().TicketRemaining)

	// the spent ticket survives into the next session and the plan is
	// no longer offered
	press(t, a, "q")
	press(t, a, "enter")
	d := a.store.Get()
	require.Equal(t, 0, d.TicketRemaining)
	require.Len(t, planOptions(d), 2)
	require.False(t, draft.TicketSelectable(d))
}

func TestWizardFailureKeepsTicketAndRetries(t *testing.T) {
	a, sched := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanTicket)

	press(t, a, "enter")
	apply(t, a, a.waitIssueCmd()())

	press(t, a, "f")
	apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateFailed, a.issueState)
	require.Equal(t, 1, a.store.Get().TicketRemaining, "failure must not consume the ticket")
	require.Contains(t, a.View(), "실패")

	press(t, a, "r")
	apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateInProgress, a.issueState)

	sched.Advance(3 * time.Second)
	settle(t, a)
	require.Equal(t, screenReport, a.screen)
	require.Equal(t, 0, a.store.Get().TicketRemaining)
}

func TestIssuingForceCompleteShortcut(t *testing.T) {
	a, _ := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanOnce)

	press(t, a, "enter")
	apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateInProgress, a.issueState)

	// early backend completion, no timer involved
	press(t, a, "d")
	settle(t, a)
	require.Equal(t, screenReport, a.screen)
	require.NotEmpty(t, a.rep.ID)
}

func TestEscFromFailedIssuanceTearsDownMachine(t *testing.T) {
	a, _ := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanOnce)

	press(t, a, "enter")
	apply(t, a, a.waitIssueCmd()())
	machine := a.machine

	press(t, a, "f")
	rearm := apply(t, a, a.waitIssueCmd()())
	require.Equal(t, issue.StateFailed, a.issueState)
	require.NotNil(t, rearm)

	press(t, a, "esc")
	require.Equal(t, screenAddress, a.screen)
	require.Nil(t, a.machine)

	// the re-armed wait sees the closed channel and yields nothing
	_, open := <-machine.Events()
	require.False(t, open)
	require.Nil(t, rearm())
}

func TestTradeGateBlocksAdvance(t *testing.T) {
	a, _ := newTestApp(t)
	press(t, a, "enter")
	require.Equal(t, screenTrade, a.screen)

	press(t, a, "enter")
	require.Equal(t, screenTrade, a.screen)
	require.NotEmpty(t, a.notice)
}

func TestPurposeSwitchClearsInputs(t *testing.T) {
	a, _ := newTestApp(t)
	press(t, a, "enter")
	press(t, a, "down")
	typeText(t, a, "50000000")
	require.NotNil(t, a.store.Get().DepositWon)

	press(t, a, "up")
	press(t, a, "right") // 전세 -> 월세
	d := a.store.Get()
	require.Equal(t, draft.PurposeWolse, d.Purpose)
	require.Nil(t, d.DepositWon)
	require.Empty(t, a.depositInput.Value())
}

func TestAddressUnitGate(t *testing.T) {
	a, _ := newTestApp(t)
	press(t, a, "enter")
	press(t, a, "down")
	typeText(t, a, "200000000")
	press(t, a, "down")
	press(t, a, "right")
	press(t, a, "enter")
	require.Equal(t, screenAddress, a.screen)

	typeText(t, a, "역삼")
	runSearch(t, a)
	press(t, a, "enter")
	require.NotNil(t, a.selected)

	press(t, a, "enter") // no unit chosen yet
	require.Equal(t, screenAddress, a.screen)
	require.Equal(t, "동/호수를 선택해 주세요", a.notice)
}

func TestAddressNetworkErrorToggle(t *testing.T) {
	a, _ := newTestApp(t)
	press(t, a, "enter")
	press(t, a, "down")
	typeText(t, a, "200000000")
	press(t, a, "down")
	press(t, a, "right")
	press(t, a, "enter")

	runSearch(t, a)
	require.Len(t, a.results, 4)

	press(t, a, "ctrl+e")
	require.True(t, a.netErr)
	require.Empty(t, a.results)
	require.Contains(t, a.View(), "주소 검색에 실패했어요")

	cmd := press(t, a, "ctrl+e")
	require.False(t, a.netErr)
	require.NotNil(t, cmd)
	apply(t, a, cmd())
	require.Len(t, a.results, 4)
}

func TestStaleSearchResultsDropped(t *testing.T) {
	a, _ := newTestApp(t)
	press(t, a, "enter")
	press(t, a, "down")
	typeText(t, a, "200000000")
	press(t, a, "down")
	press(t, a, "right")
	press(t, a, "enter")

	typeText(t, a, "역삼")
	stale := a.searchCmd(a.searchSeq, "역삼")
	typeText(t, a, "동") // query moved on; the seq advanced

	apply(t, a, stale())
	require.Empty(t, a.results, "results from a superseded query are ignored")
}

func TestReportQuitResetsSession(t *testing.T) {
	a, sched := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanOnce)
	press(t, a, "enter")
	apply(t, a, a.waitIssueCmd()())
	sched.Advance(3 * time.Second)
	settle(t, a)

	press(t, a, "q")
	require.Equal(t, screenHome, a.screen)
	d := a.store.Get()
	require.Equal(t, draft.PurposeJeonse, d.Purpose)
	require.Nil(t, d.DepositWon)
	require.Empty(t, d.AddressSelected)
	require.Nil(t, a.machine)
}

func TestHistoryScreen(t *testing.T) {
	a, sched := newTestApp(t)
	driveToPay(t, a)
	fillPay(t, a, draft.PlanOnce)
	press(t, a, "enter")
	apply(t, a, a.waitIssueCmd()())
	sched.Advance(3 * time.Second)
	settle(t, a)
	press(t, a, "q")

	cmd := press(t, a, "v")
	require.Equal(t, screenHistory, a.screen)
	require.NotNil(t, cmd)
	apply(t, a, cmd())
	require.Len(t, a.history, 1)
	require.True(t, strings.Contains(a.View(), "역삼로"))

	press(t, a, "enter")
	require.Equal(t, screenReport, a.screen)
	require.NotEmpty(t, a.rep.ID)

	// opening a stored report loads its address back into the draft
	d := a.store.Get()
	require.Equal(t, draft.PurposeJeonse, d.Purpose)
	require.Equal(t, "서울시 강남구 역삼로 123", d.AddressSelected)
	require.Equal(t, a.rep.UnitDong, d.UnitDong)
	require.Equal(t, a.rep.UnitHo, d.UnitHo)
}