package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/issue"
)

func (a *App) handleIssuingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "f":
		// simulated backend failure
		if a.machine != nil && !a.issueState.Terminal() {
			a.machine.Fail()
		}
		return a, nil
	case "d":
		// simulated early backend completion, ahead of the done timer
		if a.machine != nil && !a.issueState.Terminal() {
			a.machine.Complete()
		}
		return a, nil
	case "r":
		if a.machine != nil && a.issueState == issue.StateFailed {
			a.machine.Retry()
			a.issueState = issue.StateInProgress
			return a, a.spin.Tick
		}
		return a, nil
	case "c":
		if a.issueState == issue.StateFailed {
			a.status = "고객센터: help@zikim.example"
		}
		return a, nil
	case "esc":
		if a.issueState == issue.StateFailed {
			a.closeMachine()
			a.back()
		}
		return a, nil
	}
	return a, nil
}

// handleIssueEvent applies one machine transition. Exactly one wait command
// is outstanding per machine: every non-done event re-arms it, and done
// hands off to the completion command instead.
func (a *App) handleIssueEvent(ev issue.Event) (tea.Model, tea.Cmd) {
	if a.machine == nil {
		return a, nil
	}
	if ev.Gen != a.machine.Gen() {
		return a, a.waitIssueCmd()
	}
	a.issueState = ev.State
	if ev.State == issue.StateDone {
		return a, a.completeCmd()
	}
	return a, a.waitIssueCmd()
}

func (a *App) renderIssuing() string {
	d := a.store.Get()
	var b strings.Builder
	switch a.issueState {
	case issue.StateFailed:
		b.WriteString(noticeStyle.Render("리포트 발급에 실패했어요") + "\n\n")
		if d.PaymentPlan == draft.PlanTicket {
			b.WriteString("이용권은 차감되지 않았어요.\n")
		} else {
			b.WriteString("결제 금액은 청구되지 않았어요.\n")
		}
		b.WriteString("\n" + selectedStyle.Render("r 다시 시도") + "  " + dimStyle.Render("c 문의하기") + "\n")
	case issue.StateSlow:
		b.WriteString(a.spin.View() + " 리포트를 발급하고 있어요\n\n")
		b.WriteString(hintStyle.Render("평소보다 조금 더 걸리고 있어요. 잠시만 기다려 주세요.") + "\n")
	default:
		b.WriteString(a.spin.View() + " 리포트를 발급하고 있어요\n\n")
		b.WriteString(hintStyle.Render("등기부등본과 시세를 확인하는 중이에요.") + "\n")
	}
	return boxStyle.Render(b.String())
}
