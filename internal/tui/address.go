package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zikim/zikim/internal/draft"
)

// Unit choices offered once a multi-unit building is selected. The catalog
// has no per-building unit data, so the choices are fixed.
var (
	dongOptions = []string{"101동", "102동", "103동"}
	hoOptions   = []string{"201호", "301호", "401호"}
)

const searchDebounce = 300 * time.Millisecond

func (a *App) handleAddressKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.back()
		a.syncTradeFocus()
		return a, nil
	case "ctrl+e":
		a.netErr = !a.netErr
		if a.netErr {
			a.results = nil
			return a, nil
		}
		a.searchSeq++
		return a, a.searchCmd(a.searchSeq, a.queryInput.Value())
	case "tab":
		if a.selected != nil && a.selected.RequiresUnit {
			a.unitFocus = (a.unitFocus + 1) % 3
			if a.unitFocus == 0 {
				a.queryInput.Focus()
			} else {
				a.queryInput.Blur()
			}
		}
		return a, nil
	case "up":
		if a.unitFocus == 0 && a.resultCursor > 0 {
			a.resultCursor--
		}
		return a, nil
	case "down":
		if a.unitFocus == 0 && a.resultCursor < len(a.results)-1 {
			a.resultCursor++
		}
		return a, nil
	case "left", "right":
		forward := m.String() == "right"
		switch a.unitFocus {
		case 1:
			a.dongCursor = cycle(a.dongCursor, len(dongOptions), forward)
			dong := dongOptions[a.dongCursor]
			a.store.Patch(func(d draft.Draft) draft.Draft {
				d.UnitDong = dong
				return d
			})
		case 2:
			a.hoCursor = cycle(a.hoCursor, len(hoOptions), forward)
			ho := hoOptions[a.hoCursor]
			a.store.Patch(func(d draft.Draft) draft.Draft {
				d.UnitHo = ho
				return d
			})
		}
		a.notice = ""
		return a, nil
	case "enter":
		return a.addressConfirm()
	}

	if a.unitFocus != 0 {
		return a, nil
	}
	var cmd tea.Cmd
	before := a.queryInput.Value()
	a.queryInput, cmd = a.queryInput.Update(m)
	if a.queryInput.Value() == before {
		return a, cmd
	}

	// the query changed: drop any prior selection and re-arm the debounce
	query := a.queryInput.Value()
	a.selected = nil
	a.store.Patch(func(d draft.Draft) draft.Draft {
		d.AddressQuery = query
		d.AddressSelected = ""
		d.UnitDong = ""
		d.UnitHo = ""
		return d
	})
	a.notice = ""
	a.searchSeq++
	seq := a.searchSeq
	return a, tea.Batch(cmd, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	}))
}

// addressConfirm selects the highlighted result on the first enter and
// advances to payment on the second, once the step gate passes.
func (a *App) addressConfirm() (tea.Model, tea.Cmd) {
	if a.selected == nil {
		if a.netErr || len(a.results) == 0 {
			a.notice = "주소를 먼저 선택해 주세요"
			return a, nil
		}
		sel := a.results[a.resultCursor]
		a.selected = &sel
		a.dongCursor = 0
		a.hoCursor = 0
		a.store.Patch(func(d draft.Draft) draft.Draft {
			return draft.WithAddress(d, sel.RoadAddress)
		})
		if sel.RequiresUnit {
			a.unitFocus = 1
			a.queryInput.Blur()
		}
		return a, nil
	}

	// the gate trusts the catalog, not the cached search row
	d := a.store.Get()
	requiresUnit := a.selected.RequiresUnit
	if entry, err := a.services.Address.Lookup(a.ctx, d.AddressSelected); err == nil && entry != nil {
		requiresUnit = entry.RequiresUnit
	}
	if !draft.AddressReady(d, requiresUnit) {
		a.notice = "동/호수를 선택해 주세요"
		return a, nil
	}
	a.push(screenPay)
	return a, nil
}

func cycle(cur, n int, forward bool) int {
	if forward {
		return (cur + 1) % n
	}
	return (cur + n - 1) % n
}

func (a *App) renderAddress() string {
	d := a.store.Get()
	var b strings.Builder
	b.WriteString(titleStyle.Render("어떤 집을 진단할까요?") + "\n\n")
	b.WriteString(a.queryInput.View() + "\n\n")

	switch {
	case a.netErr:
		b.WriteString(noticeStyle.Render("주소 검색에 실패했어요.") + "\n")
		b.WriteString(hintStyle.Render("네트워크 연결을 확인한 뒤 다시 시도해 주세요. (ctrl+e 복구)") + "\n")
	case len(a.results) == 0:
		b.WriteString(hintStyle.Render("검색 결과가 없어요.") + "\n")
	default:
		for i, r := range a.results {
			marker := "  "
			line := r.RoadAddress
			if a.selected != nil && a.selected.RoadAddress == r.RoadAddress {
				line = selectedStyle.Render(line + " ✓")
			}
			if a.unitFocus == 0 && i == a.resultCursor {
				marker = cursorStyle.Render("› ")
			}
			b.WriteString(marker + line + "\n")
		}
	}

	if a.selected != nil && a.selected.RequiresUnit {
		b.WriteString("\n" + sectionStyle.Render("동/호수 선택") + "\n")
		b.WriteString(a.rowMarker(a.unitFocus == 1))
		b.WriteString(a.renderSegments(dongOptions, unitIndex(dongOptions, d.UnitDong)) + "\n")
		b.WriteString(a.rowMarker(a.unitFocus == 2))
		b.WriteString(a.renderSegments(hoOptions, unitIndex(hoOptions, d.UnitHo)) + "\n")
	}

	cta := "진단 계속하기"
	if draft.AddressReady(d, a.selected != nil && a.selected.RequiresUnit) {
		b.WriteString("\n" + selectedStyle.Render(cta) + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render(cta) + "\n")
	}
	return boxStyle.Render(b.String())
}

func unitIndex(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return -1
}
