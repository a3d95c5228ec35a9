package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/issue"
	"github.com/zikim/zikim/internal/report"
)

var cardOptions = []string{"신한카드", "우리카드"}

var agreementLabels = [3]string{
	"[필수] 진단 서비스 이용약관 동의",
	"[필수] 개인정보 수집·이용 동의",
	"[선택] 마케팅 정보 수신 동의",
}

func planOptions(d draft.Draft) []draft.PaymentPlan {
	plans := []draft.PaymentPlan{draft.PlanOnce, draft.PlanFive}
	if d.TicketRemaining > 0 {
		plans = append(plans, draft.PlanTicket)
	}
	return plans
}

func planLabel(p draft.PaymentPlan, remaining int) string {
	switch p {
	case draft.PlanOnce:
		return "일시불"
	case draft.PlanFive:
		return "5회 분할"
	case draft.PlanTicket:
		return fmt.Sprintf("이용권 차감 (%d장 보유)", remaining)
	}
	return string(p)
}

const payRowCount = 5 // card, plan, three agreements

func (a *App) handlePayKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := a.store.Get()
	switch m.String() {
	case "esc":
		a.back()
		return a, nil
	case "up":
		if a.payCursor > 0 {
			a.payCursor--
		}
		return a, nil
	case "down":
		if a.payCursor < payRowCount-1 {
			a.payCursor++
		}
		return a, nil
	case "left", "right":
		forward := m.String() == "right"
		switch a.payCursor {
		case 0:
			if a.cardCursor < 0 {
				a.cardCursor = 0
			} else {
				a.cardCursor = cycle(a.cardCursor, len(cardOptions), forward)
			}
		case 1:
			a.cyclePlan(forward)
		default:
			a.toggleAgreement(a.payCursor - 2)
		}
		a.notice = ""
		return a, nil
	case " ", "space":
		switch a.payCursor {
		case 0:
			if a.cardCursor < 0 {
				a.cardCursor = 0
			}
		case 1:
			a.cyclePlan(true)
		default:
			a.toggleAgreement(a.payCursor - 2)
		}
		a.notice = ""
		return a, nil
	case "enter":
		required := []bool{a.agreements[0], a.agreements[1]}
		if !draft.PayReady(d, required, a.cardCursor >= 0) {
			a.notice = "결제 수단, 플랜, 필수 약관을 확인해 주세요"
			return a, nil
		}
		return a.startIssuance()
	}
	return a, nil
}

func (a *App) cyclePlan(forward bool) {
	d := a.store.Get()
	plans := planOptions(d)
	idx := -1
	for i, p := range plans {
		if p == d.PaymentPlan {
			idx = i
		}
	}
	if idx < 0 {
		idx = 0
	} else if forward {
		idx = (idx + 1) % len(plans)
	} else {
		idx = (idx + len(plans) - 1) % len(plans)
	}
	next := plans[idx]
	a.store.Patch(func(d draft.Draft) draft.Draft {
		d.PaymentPlan = next
		return d
	})
}

func (a *App) toggleAgreement(i int) {
	if i >= 0 && i < len(a.agreements) {
		a.agreements[i] = !a.agreements[i]
	}
}

// startIssuance replaces the pay screen with the progress screen, so the
// paid step cannot be navigated back into.
func (a *App) startIssuance() (tea.Model, tea.Cmd) {
	a.machine = issue.NewMachine(a.sched, a.cfg.Issue.SlowAfter, a.cfg.Issue.DoneAfter)
	a.issueState = issue.StateInProgress
	a.replace(screenIssuing)
	return a, tea.Batch(a.spin.Tick, a.waitIssueCmd())
}

func (a *App) renderPay() string {
	d := a.store.Get()
	var b strings.Builder
	b.WriteString(titleStyle.Render("결제하고 리포트를 받아보세요") + "\n\n")

	b.WriteString(sectionStyle.Render(d.AddressSelected))
	if d.UnitDong != "" || d.UnitHo != "" {
		b.WriteString(" " + d.UnitDong + " " + d.UnitHo)
	}
	b.WriteString("\n" + report.PriceLine(d))
	if line := report.ContractLine(d); line != "" {
		b.WriteString(" · " + line)
	}
	b.WriteString("\n\n")

	b.WriteString(a.rowMarker(a.payCursor == 0))
	b.WriteString(sectionStyle.Render("결제 수단") + "  ")
	b.WriteString(a.renderSegments(cardOptions, a.cardCursor) + "\n\n")

	b.WriteString(a.rowMarker(a.payCursor == 1))
	b.WriteString(sectionStyle.Render("결제 플랜") + "\n")
	for _, p := range planOptions(d) {
		label := planLabel(p, d.TicketRemaining)
		if p == d.PaymentPlan {
			b.WriteString("    " + selectedStyle.Render("● "+label) + "\n")
		} else {
			b.WriteString("    ○ " + label + "\n")
		}
	}
	b.WriteString("\n")

	for i, label := range agreementLabels {
		b.WriteString(a.rowMarker(a.payCursor == 2+i))
		mark := "☐"
		if a.agreements[i] {
			mark = "☑"
		}
		b.WriteString(mark + " " + label + "\n")
	}

	required := []bool{a.agreements[0], a.agreements[1]}
	cta := "결제하기"
	if draft.PayReady(d, required, a.cardCursor >= 0) {
		b.WriteString("\n" + selectedStyle.Render(cta) + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render(cta) + "\n")
	}
	return boxStyle.Render(b.String())
}
