package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/money"
)

// tradeRow identifies one focusable line on the trade-terms screen. Which
// rows exist depends on the purpose: 매매 has no deposit, rent, or period.
type tradeRow int

const (
	rowPurpose tradeRow = iota
	rowDeposit
	rowRent
	rowSale
	rowPeriod
	rowYears
)

func tradeRowsFor(d draft.Draft) []tradeRow {
	switch d.Purpose {
	case draft.PurposeMaemae:
		return []tradeRow{rowPurpose, rowSale}
	case draft.PurposeWolse:
		rows := []tradeRow{rowPurpose, rowDeposit, rowRent, rowPeriod}
		if d.ContractPeriodType == draft.PeriodCustom {
			rows = append(rows, rowYears)
		}
		return rows
	default:
		rows := []tradeRow{rowPurpose, rowDeposit, rowPeriod}
		if d.ContractPeriodType == draft.PeriodCustom {
			rows = append(rows, rowYears)
		}
		return rows
	}
}

func (a *App) currentTradeRow() tradeRow {
	rows := tradeRowsFor(a.store.Get())
	if a.tradeCursor >= len(rows) {
		a.tradeCursor = len(rows) - 1
	}
	return rows[a.tradeCursor]
}

func (a *App) handleTradeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := tradeRowsFor(a.store.Get())
	row := a.currentTradeRow()

	switch m.String() {
	case "esc":
		a.back()
		return a, nil
	case "up":
		if a.tradeCursor > 0 {
			a.tradeCursor--
		}
		a.syncTradeFocus()
		return a, nil
	case "down":
		if a.tradeCursor < len(rows)-1 {
			a.tradeCursor++
		}
		a.syncTradeFocus()
		return a, nil
	case "left", "right":
		switch row {
		case rowPurpose:
			a.cyclePurpose(m.String() == "right")
			return a, nil
		case rowPeriod:
			a.cyclePeriod(m.String() == "right")
			return a, nil
		}
	case "enter":
		if !draft.TradeReady(a.store.Get()) {
			a.notice = "입력하지 않은 항목이 있어요"
			return a, nil
		}
		a.push(screenAddress)
		a.unitFocus = 0
		a.queryInput.Focus()
		a.searchSeq++
		return a, tea.Batch(textinput.Blink, a.searchCmd(a.searchSeq, a.queryInput.Value()))
	}

	// everything else goes to the focused input, if any
	switch row {
	case rowDeposit:
		return a.updateMoneyInput(&a.depositInput, m, func(d draft.Draft, v *int64) draft.Draft {
			d.DepositWon = v
			return d
		})
	case rowRent:
		return a.updateMoneyInput(&a.rentInput, m, func(d draft.Draft, v *int64) draft.Draft {
			d.MonthlyRentWon = v
			return d
		})
	case rowSale:
		return a.updateMoneyInput(&a.saleInput, m, func(d draft.Draft, v *int64) draft.Draft {
			d.SalePriceWon = v
			return d
		})
	case rowYears:
		return a.updateYearsInput(m)
	}
	return a, nil
}

func (a *App) cyclePurpose(forward bool) {
	order := []draft.Purpose{draft.PurposeJeonse, draft.PurposeWolse, draft.PurposeMaemae}
	cur := a.store.Get().Purpose
	idx := 0
	for i, p := range order {
		if p == cur {
			idx = i
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	next := order[idx]
	if next == cur {
		return
	}
	a.store.Patch(func(d draft.Draft) draft.Draft { return draft.WithPurpose(d, next) })
	// the purpose switch wiped the dependent fields; mirror that in the inputs
	a.depositInput.SetValue("")
	a.rentInput.SetValue("")
	a.saleInput.SetValue("")
	a.yearsInput.SetValue("")
	a.notice = ""
	a.syncTradeFocus()
}

func (a *App) cyclePeriod(forward bool) {
	order := []draft.ContractPeriodType{draft.PeriodOneYear, draft.PeriodTwoYear, draft.PeriodCustom}
	cur := a.store.Get().ContractPeriodType
	idx := -1
	for i, t := range order {
		if t == cur {
			idx = i
		}
	}
	if idx < 0 {
		idx = 0
	} else if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	next := order[idx]
	a.store.Patch(func(d draft.Draft) draft.Draft { return draft.WithPeriodType(d, next) })
	a.syncTradeFocus()
}

func (a *App) syncTradeFocus() {
	a.depositInput.Blur()
	a.rentInput.Blur()
	a.saleInput.Blur()
	a.yearsInput.Blur()
	switch a.currentTradeRow() {
	case rowDeposit:
		a.depositInput.Focus()
	case rowRent:
		a.rentInput.Focus()
	case rowSale:
		a.saleInput.Focus()
	case rowYears:
		a.yearsInput.Focus()
	}
}

func (a *App) updateMoneyInput(ti *textinput.Model, m tea.KeyMsg, set func(draft.Draft, *int64) draft.Draft) (tea.Model, tea.Cmd) {
	if !ti.Focused() {
		ti.Focus()
	}
	var cmd tea.Cmd
	*ti, cmd = ti.Update(m)
	digits := money.DigitsOnly(ti.Value())
	if digits != ti.Value() {
		ti.SetValue(digits)
		ti.CursorEnd()
	}
	var v *int64
	if digits != "" {
		if n, err := strconv.ParseInt(digits, 10, 64); err == nil && n > 0 {
			v = &n
		}
	}
	a.store.Patch(func(d draft.Draft) draft.Draft { return set(d, v) })
	a.notice = ""
	return a, cmd
}

func (a *App) updateYearsInput(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.yearsInput.Focused() {
		a.yearsInput.Focus()
	}
	var cmd tea.Cmd
	a.yearsInput, cmd = a.yearsInput.Update(m)
	digits := money.DigitsOnly(a.yearsInput.Value())
	if digits != a.yearsInput.Value() {
		a.yearsInput.SetValue(digits)
		a.yearsInput.CursorEnd()
	}
	var v *int
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			v = &n
		}
	}
	a.store.Patch(func(d draft.Draft) draft.Draft {
		d.ContractPeriodYears = v
		return d
	})
	a.notice = ""
	return a, cmd
}

// ---------------------------------------------------------------------------
// render
// ---------------------------------------------------------------------------

func (a *App) renderTrade() string {
	d := a.store.Get()
	row := a.currentTradeRow()

	var b strings.Builder
	b.WriteString(titleStyle.Render("어떤 거래를 진단할까요?") + "\n\n")

	b.WriteString(a.rowMarker(row == rowPurpose))
	b.WriteString(a.renderSegments([]string{"전세", "월세", "매매"}, purposeIndex(d.Purpose)) + "\n\n")

	switch d.Purpose {
	case draft.PurposeMaemae:
		b.WriteString(a.rowMarker(row == rowSale))
		b.WriteString(sectionStyle.Render("매매가") + "  " + a.saleInput.View() + "\n")
		b.WriteString(a.moneyHelper(d.SalePriceWon))
	case draft.PurposeWolse:
		b.WriteString(a.rowMarker(row == rowDeposit))
		b.WriteString(sectionStyle.Render("보증금") + "  " + a.depositInput.View() + "\n")
		b.WriteString(a.moneyHelper(d.DepositWon))
		b.WriteString(a.rowMarker(row == rowRent))
		b.WriteString(sectionStyle.Render("월세") + "    " + a.rentInput.View() + "\n")
		b.WriteString(a.moneyHelper(d.MonthlyRentWon))
	default:
		b.WriteString(a.rowMarker(row == rowDeposit))
		b.WriteString(sectionStyle.Render("보증금") + "  " + a.depositInput.View() + "\n")
		b.WriteString(a.moneyHelper(d.DepositWon))
	}

	if d.Purpose != draft.PurposeMaemae {
		b.WriteString("\n" + a.rowMarker(row == rowPeriod))
		b.WriteString(sectionStyle.Render("계약기간") + "  ")
		b.WriteString(a.renderSegments([]string{"1년", "2년", "직접 입력"}, periodIndex(d.ContractPeriodType)) + "\n")
		if d.ContractPeriodType == draft.PeriodCustom {
			b.WriteString(a.rowMarker(row == rowYears))
			b.WriteString(sectionStyle.Render("기간(년)") + "  " + a.yearsInput.View() + "\n")
		}
	}

	if draft.TradeReady(d) {
		b.WriteString("\n" + selectedStyle.Render("다음") + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render("다음 (입력을 완료해 주세요)") + "\n")
	}
	return boxStyle.Render(b.String())
}

func (a *App) rowMarker(on bool) string {
	if on {
		return cursorStyle.Render("› ")
	}
	return "  "
}

func (a *App) renderSegments(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = segmentOn.Render(l)
		} else {
			parts[i] = segmentOff.Render(l)
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) moneyHelper(v *int64) string {
	if v == nil {
		return ""
	}
	return "          " + helperStyle.Render(money.WonToKoreanText(*v)) + "\n"
}

func purposeIndex(p draft.Purpose) int {
	switch p {
	case draft.PurposeWolse:
		return 1
	case draft.PurposeMaemae:
		return 2
	}
	return 0
}

func periodIndex(t draft.ContractPeriodType) int {
	switch t {
	case draft.PeriodOneYear:
		return 0
	case draft.PeriodTwoYear:
		return 1
	case draft.PeriodCustom:
		return 2
	}
	return -1
}
