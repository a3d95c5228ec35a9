package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/draft"
)

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc", "q":
		a.back()
		return a, nil
	case "up":
		if a.histCursor > 0 {
			a.histCursor--
		}
		return a, nil
	case "down":
		if a.histCursor < len(a.history)-1 {
			a.histCursor++
		}
		return a, nil
	case "enter":
		if len(a.history) == 0 {
			return a, nil
		}
		rep := a.history[a.histCursor]
		// load the stored row back into the draft, as if the address had
		// just been selected for this session
		a.store.Patch(func(d draft.Draft) draft.Draft {
			d.Purpose = draft.Purpose(rep.Purpose)
			d = draft.WithAddress(d, rep.RoadAddress)
			d.UnitDong = rep.UnitDong
			d.UnitHo = rep.UnitHo
			return d
		})
		a.rep = rep
		a.opinion = ""
		a.tabIdx = 0
		a.replace(screenReport)
		return a, nil
	}
	return a, nil
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("발급 내역") + "\n\n")
	if len(a.history) == 0 {
		b.WriteString(hintStyle.Render("아직 발급한 리포트가 없어요.") + "\n")
		return boxStyle.Render(b.String())
	}
	for i, r := range a.history {
		marker := "  "
		if i == a.histCursor {
			marker = cursorStyle.Render("› ")
		}
		line := r.RoadAddress
		if r.UnitDong != "" || r.UnitHo != "" {
			line += " " + r.UnitDong + " " + r.UnitHo
		}
		b.WriteString(marker + line + "\n")
		b.WriteString("    " + hintStyle.Render(r.PriceLine+" · "+r.IssuedAt.Format("2006.01.02")) + "\n")
	}
	return boxStyle.Render(b.String())
}
