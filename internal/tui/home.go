package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q":
		return a, tea.Quit
	case "enter":
		a.store.NewSession()
		a.resetWizardState()
		a.push(screenTrade)
		return a, nil
	case "v":
		a.push(screenHistory)
		return a, a.historyCmd()
	}
	return a, nil
}

func (a *App) renderHome() string {
	d := a.store.Get()
	var b strings.Builder
	b.WriteString(titleStyle.Render("지킴 · 전월세 안심 진단") + "\n\n")
	b.WriteString("계약 전에 매물, 집주인, 시세, 대출까지 한 번에 진단해요.\n\n")
	b.WriteString(sectionStyle.Render("보유 이용권") + "  ")
	b.WriteString(fmt.Sprintf("%d장\n\n", d.TicketRemaining))
	b.WriteString(selectedStyle.Render("▶ 진단 시작하기") + "\n")
	return boxStyle.Render(b.String())
}
