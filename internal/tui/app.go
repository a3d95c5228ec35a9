// Package tui renders the diagnosis purchase wizard: a linear flow from the
// home screen through trade terms, address, payment, issuance progress, and
// the finished report, plus a history list of past reports.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zikim/zikim/internal/config"
	"github.com/zikim/zikim/internal/database/repository"
	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/issue"
	"github.com/zikim/zikim/internal/llm"
	"github.com/zikim/zikim/internal/report"
	"github.com/zikim/zikim/internal/service"
)

// App ties together the wizard screens.
type App struct {
	ctx      context.Context
	cfg      config.Config
	log      *zap.Logger
	store    *draft.Store
	repos    Repos
	services Services
	advisor  llm.Advisor
	sched    issue.Scheduler

	screen screen
	stack  []screen
	width  int
	height int
	status string
	notice string

	// trade step
	tradeCursor  int
	depositInput textinput.Model
	rentInput    textinput.Model
	saleInput    textinput.Model
	yearsInput   textinput.Model

	// address step
	queryInput   textinput.Model
	searchSeq    int
	results      []repository.Address
	resultCursor int
	selected     *repository.Address
	unitFocus    int // 0 search, 1 dong, 2 ho
	dongCursor   int
	hoCursor     int
	netErr       bool

	// pay step
	payCursor  int
	cardCursor int // -1 until a card is chosen
	agreements [3]bool

	// issuing step
	machine    *issue.Machine
	spin       spinner.Model
	issueState issue.State

	// report
	rep     repository.Report
	opinion string
	tabIdx  int

	// history
	history    []repository.Report
	histCursor int
}

type Repos struct {
	Addresses *repository.AddressRepo
	Reports   *repository.ReportRepo
}

type Services struct {
	Address *service.AddressService
	Issue   *service.IssueService
	History *service.HistoryService
}

type screen string

const (
	screenHome    screen = "home"
	screenTrade   screen = "trade"
	screenAddress screen = "address"
	screenPay     screen = "pay"
	screenIssuing screen = "issuing"
	screenReport  screen = "report"
	screenHistory screen = "history"
)

func New(ctx context.Context, cfg config.Config, store *draft.Store, repos Repos, services Services, advisor llm.Advisor, sched issue.Scheduler, log *zap.Logger) *App {
	moneyInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 15
		ti.Width = 20
		return ti
	}
	query := textinput.New()
	query.Placeholder = "도로명 주소 검색"
	query.Prompt = "🔍 "
	query.CharLimit = 40
	query.Width = 34

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	return &App{
		ctx:          ctx,
		cfg:          cfg,
		log:          log,
		store:        store,
		repos:        repos,
		services:     services,
		advisor:      advisor,
		sched:        sched,
		screen:       screenHome,
		depositInput: moneyInput("보증금 (원)"),
		rentInput:    moneyInput("월세 (원)"),
		saleInput:    moneyInput("매매가 (원)"),
		yearsInput:   moneyInput("년"),
		queryInput:   query,
		spin:         sp,
		cardCursor:   -1,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// ---------------------------------------------------------------------------
// navigation
// ---------------------------------------------------------------------------

func (a *App) push(s screen) {
	a.stack = append(a.stack, a.screen)
	a.screen = s
	a.notice = ""
}

// replace enters s without recording the current screen, so back can never
// return to it. Used when leaving the issuing screen.
func (a *App) replace(s screen) {
	a.screen = s
	a.notice = ""
}

func (a *App) back() {
	if len(a.stack) == 0 {
		return
	}
	a.screen = a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	a.notice = ""
}

// goHome ends the wizard session: the draft is discarded and any running
// issuance machine is torn down.
func (a *App) goHome() {
	a.closeMachine()
	a.store.NewSession()
	a.resetWizardState()
	a.stack = nil
	a.screen = screenHome
	a.notice = ""
	a.status = ""
}

func (a *App) resetWizardState() {
	a.tradeCursor = 0
	a.depositInput.SetValue("")
	a.rentInput.SetValue("")
	a.saleInput.SetValue("")
	a.yearsInput.SetValue("")
	a.queryInput.SetValue("")
	a.results = nil
	a.resultCursor = 0
	a.selected = nil
	a.unitFocus = 0
	a.dongCursor = 0
	a.hoCursor = 0
	a.payCursor = 0
	a.cardCursor = -1
	a.agreements = [3]bool{}
	a.rep = repository.Report{}
	a.opinion = ""
	a.tabIdx = 0
}

func (a *App) closeMachine() {
	if a.machine != nil {
		a.machine.Close()
		a.machine = nil
	}
}

// ---------------------------------------------------------------------------
// update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil

	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			a.closeMachine()
			return a, tea.Quit
		}
		switch a.screen {
		case screenHome:
			return a.handleHomeKey(m)
		case screenTrade:
			return a.handleTradeKey(m)
		case screenAddress:
			return a.handleAddressKey(m)
		case screenPay:
			return a.handlePayKey(m)
		case screenIssuing:
			return a.handleIssuingKey(m)
		case screenReport:
			return a.handleReportKey(m)
		case screenHistory:
			return a.handleHistoryKey(m)
		}

	case spinner.TickMsg:
		if a.screen != screenIssuing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		return a, cmd

	case searchTickMsg:
		if a.screen != screenAddress || m.seq != a.searchSeq {
			return a, nil
		}
		return a, a.searchCmd(m.seq, a.queryInput.Value())

	case addressResultsMsg:
		if m.seq != a.searchSeq {
			return a, nil
		}
		a.results = m.items
		if a.resultCursor >= len(a.results) {
			a.resultCursor = 0
		}
		return a, nil

	case issueEventMsg:
		return a.handleIssueEvent(issue.Event(m))

	case issueDoneMsg:
		a.rep = m.rep
		a.opinion = m.opinion
		a.closeMachine()
		a.replace(screenReport)
		return a, nil

	case historyMsg:
		a.history = []repository.Report(m)
		if a.histCursor >= len(a.history) {
			a.histCursor = 0
		}
		return a, nil

	case errMsg:
		a.status = "오류: " + m.Error()
		if a.log != nil {
			a.log.Error("ui error", zap.Error(m.err))
		}
		return a, nil
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// commands
// ---------------------------------------------------------------------------

func (a *App) searchCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := a.services.Address.Search(a.ctx, query)
		if err != nil {
			return errMsg{err}
		}
		return addressResultsMsg{seq: seq, items: items}
	}
}

func (a *App) waitIssueCmd() tea.Cmd {
	machine := a.machine
	return func() tea.Msg {
		ev, ok := <-machine.Events()
		if !ok {
			return nil
		}
		return issueEventMsg(ev)
	}
}

func (a *App) completeCmd() tea.Cmd {
	return func() tea.Msg {
		rep, err := a.services.Issue.Complete(a.ctx, a.store)
		if err != nil {
			return errMsg{err}
		}
		warn, neutral := tierCounts()
		opinion, err := a.advisor.Opinion(a.ctx, llm.OpinionRequest{
			RoadAddress:   rep.RoadAddress,
			Purpose:       draft.Purpose(rep.Purpose).Label(),
			PriceLine:     rep.PriceLine,
			ContractYears: rep.ContractYears,
			WarnCount:     warn,
			NeutralCount:  neutral,
		})
		if err != nil {
			if a.log != nil {
				a.log.Warn("advisor opinion unavailable", zap.Error(err))
			}
			opinion = ""
		}
		return issueDoneMsg{rep: rep, opinion: opinion}
	}
}

func (a *App) historyCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.History.Recent(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(list)
	}
}

func tierCounts() (warn, neutral int) {
	for _, row := range report.Summary() {
		switch report.TierOf(row.Status) {
		case report.TierWarn:
			warn++
		case report.TierNeutral:
			neutral++
		}
	}
	return warn, neutral
}

// ---------------------------------------------------------------------------
// view
// ---------------------------------------------------------------------------

func (a *App) View() string {
	var body string
	switch a.screen {
	case screenTrade:
		body = a.renderTrade()
	case screenAddress:
		body = a.renderAddress()
	case screenPay:
		body = a.renderPay()
	case screenIssuing:
		body = a.renderIssuing()
	case screenReport:
		body = a.renderReport()
	case screenHistory:
		body = a.renderHistory()
	default:
		body = a.renderHome()
	}
	out := body
	if a.notice != "" {
		out += "\n" + noticeStyle.Render("⚠ "+a.notice)
	}
	if a.status != "" {
		out += "\n" + statusStyle.Render(a.status)
	}
	return out + "\n" + a.renderFooter()
}

func (a *App) renderFooter() string {
	var hints string
	switch a.screen {
	case screenHome:
		hints = "enter 진단 시작 · v 발급 내역 · ctrl+c 종료"
	case screenTrade:
		hints = "↑↓ 항목 · ←→ 선택 · enter 다음 · esc 뒤로"
	case screenAddress:
		hints = "tab 포커스 · ↑↓ 이동 · ←→ 선택 · enter 선택/다음 · ctrl+e 네트워크 오류 · esc 뒤로"
	case screenPay:
		hints = "↑↓ 항목 · ←→/space 선택 · enter 결제하기 · esc 뒤로"
	case screenIssuing:
		if a.issueState == issue.StateFailed {
			hints = "r 다시 시도 · c 문의하기 · esc 뒤로"
		} else {
			hints = "발급이 끝나면 자동으로 이동합니다"
		}
	case screenReport:
		hints = "←→ 탭 이동 · q 홈으로"
	case screenHistory:
		hints = "↑↓ 이동 · enter 리포트 보기 · esc 뒤로"
	}
	return footerStyle.Render(hints)
}
