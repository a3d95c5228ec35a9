package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/money"
	"github.com/zikim/zikim/internal/report"
)

func (a *App) handleReportKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	tabs := report.Tabs()
	switch m.String() {
	case "q", "esc":
		a.goHome()
		return a, nil
	case "left":
		if a.tabIdx > 0 {
			a.tabIdx--
		}
		return a, nil
	case "right":
		if a.tabIdx < len(tabs)-1 {
			a.tabIdx++
		}
		return a, nil
	}
	return a, nil
}

func (a *App) renderReport() string {
	tabs := report.Tabs()
	if a.tabIdx >= len(tabs) {
		a.tabIdx = 0
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("안심 진단 리포트") + "\n\n")

	b.WriteString(sectionStyle.Render(a.rep.RoadAddress))
	if a.rep.UnitDong != "" || a.rep.UnitHo != "" {
		b.WriteString(" " + a.rep.UnitDong + " " + a.rep.UnitHo)
	}
	b.WriteString("\n" + a.rep.PriceLine)
	if a.rep.ContractYears > 0 {
		b.WriteString(" · 계약기간 " + money.FormatWithComma(int64(a.rep.ContractYears)) + "년")
	}
	b.WriteString("\n" + hintStyle.Render("발급일 "+a.rep.IssuedAt.Format("2006.01.02 15:04")) + "\n\n")

	if a.opinion != "" {
		b.WriteString(sectionStyle.Render("AI 종합 진단 의견") + "\n")
		b.WriteString(a.opinion + "\n\n")
	}

	b.WriteString(sectionStyle.Render("진단 요약") + "\n")
	for _, row := range report.Summary() {
		b.WriteString("  " + statusTag(row.Status) + " " + row.Title)
		if row.Note != "" {
			b.WriteString("  " + hintStyle.Render(row.Note))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var bar []string
	for i, t := range tabs {
		if i == a.tabIdx {
			bar = append(bar, tabOn.Render(t.Title))
		} else {
			bar = append(bar, tabOff.Render(t.Title))
		}
	}
	b.WriteString(strings.Join(bar, "") + "\n\n")

	for _, row := range tabs[a.tabIdx].Rows {
		b.WriteString("  " + statusTag(row.Status) + " " + row.Title + "\n")
		if row.Note != "" {
			b.WriteString("     " + hintStyle.Render(row.Note) + "\n")
		}
	}
	return boxStyle.Render(b.String())
}

func statusTag(s report.Status) string {
	switch report.TierOf(s) {
	case report.TierGood:
		return tagGood.Render(string(s))
	case report.TierWarn:
		return tagWarn.Render(string(s))
	default:
		return tagNeutral.Render(string(s))
	}
}
