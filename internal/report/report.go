// Package report derives the diagnosis report presentation from a completed
// draft: status tags, summary lines, and the fixed tab set with its sample
// content. There is no computation here beyond formatting and tier mapping.
package report

import (
	"github.com/zikim/zikim/internal/draft"
	"github.com/zikim/zikim/internal/money"
)

// Status is the outcome label attached to each report check.
type Status string

const (
	StatusGood       Status = "양호"
	StatusNeedsCheck Status = "확인 필요"
	StatusDanger     Status = "위험"
	StatusLikely     Status = "가능성 높음"
	StatusDenied     Status = "불가"
	StatusNotApplied Status = "해당 없음"
	StatusUnknown    Status = "확인 불가"
)

// Tier is the presentation bucket for a status.
type Tier int

const (
	TierGood Tier = iota
	TierWarn
	TierNeutral
)

// TierOf maps a status to its color tier. '확인 필요' renders in the warning
// tier even though it is not strictly a failure.
func TierOf(s Status) Tier {
	switch s {
	case StatusGood, StatusLikely:
		return TierGood
	case StatusNeedsCheck, StatusDanger, StatusDenied:
		return TierWarn
	default:
		return TierNeutral
	}
}

// PriceLine renders the purpose-dependent price summary for the report
// header, e.g. "전세 2억" or "보증금 5,000만원 / 월세 50만원".
func PriceLine(d draft.Draft) string {
	switch d.Purpose {
	case draft.PurposeMaemae:
		return "매매 " + summary(d.SalePriceWon)
	case draft.PurposeJeonse:
		return "전세 " + summary(d.DepositWon)
	default:
		return "보증금 " + summary(d.DepositWon) + " / 월세 " + summary(d.MonthlyRentWon)
	}
}

// ContractLine renders the contract length, or "" when none applies (매매, or
// nothing chosen yet).
func ContractLine(d draft.Draft) string {
	years := d.ContractYears()
	if years <= 0 {
		return ""
	}
	return "계약기간 " + money.FormatWithComma(int64(years)) + "년"
}

func summary(p *int64) string {
	if p == nil {
		return money.Placeholder
	}
	return money.WonSummary(*p)
}

// Row is one check line inside a tab.
type Row struct {
	Title  string
	Status Status
	Note   string
}

// Tab is one report section.
type Tab struct {
	Key   string
	Title string
	Rows  []Row
}

// Summary lists the always-visible check overview shown above the tabs.
func Summary() []Row {
	return []Row{
		{Title: "매물 진단", Status: StatusNeedsCheck, Note: "이상 2개"},
		{Title: "집주인 진단", Status: StatusGood, Note: "0개"},
		{Title: "시세 진단", Status: StatusNeedsCheck, Note: "이상 1개"},
		{Title: "대출/보험", Status: StatusLikely, Note: "양호"},
		{Title: "치안", Status: StatusGood, Note: "양호"},
		{Title: "생활", Status: StatusGood, Note: "양호"},
		{Title: "특약", Status: StatusGood, Note: "추천 3개"},
	}
}

// Tabs returns the fixed tab set with its sample rows. Content is static
// mock data keyed only by status.
func Tabs() []Tab {
	return []Tab{
		{
			Key:   "property",
			Title: "매물 진단",
			Rows: []Row{
				{Title: "대지권", Status: StatusGood, Note: "대지권 관련 항목 상세 설명/정의/특약 안내"},
				{Title: "토지별도등기", Status: StatusNeedsCheck, Note: "토지별도등기 관련 안내 및 확인 포인트"},
				{Title: "가등기", Status: StatusGood, Note: "가등기 관련 안내"},
				{Title: "압류/가압류", Status: StatusNeedsCheck, Note: "압류/가압류 관련 안내"},
			},
		},
		{
			Key:   "owner",
			Title: "집주인 진단",
			Rows: []Row{
				{Title: "건물/토지 소유자 일치", Status: StatusGood},
				{Title: "임대사업자 등록", Status: StatusNotApplied},
				{Title: "보증금 미반환 이력", Status: StatusUnknown},
				{Title: "고액 상습 체납자 조회", Status: StatusUnknown, Note: "조회 버튼을 통해 결과를 확인할 수 있어요."},
			},
		},
		{
			Key:   "market",
			Title: "시세진단",
			Rows: []Row{
				{Title: "기존 채무금액", Status: StatusNeedsCheck, Note: "채무가 있다고 무조건 위험이 아니에요. 규모/우선순위를 확인하세요."},
				{Title: "여유 금액", Status: StatusNeedsCheck, Note: "여유금액 = 매매 추정 시세 - 기존 채무금액 - 보증금"},
				{Title: "최우선 변제권", Status: StatusGood},
			},
		},
		{
			Key:   "loan",
			Title: "대출/보험 진단",
			Rows: []Row{
				{Title: "보증보험 예비심사", Status: StatusLikely, Note: "보증보험 가입에 문제가 없어 보여요!"},
				{Title: "보증금 대출 예비심사", Status: StatusDenied, Note: "보증금 대출이 힘들 수 있어요."},
			},
		},
		{
			Key:   "special",
			Title: "맞춤 특약",
			Rows: []Row{
				{Title: "등기변동 금지 특약", Status: StatusGood, Note: "계약일 이후부터 잔금 지급일까지 임대인은 본 부동산에 근저당권·가압류·압류·전세권·임차권 등 어떠한 권리도 추가로 설정하거나 변경하지 않는다."},
				{Title: "보증보험 가입 불가 시 계약 무효", Status: StatusGood, Note: "보증보험 가입이 거절될 경우 계약은 무효로 하며 임대인은 계약금 전액을 즉시 반환한다."},
				{Title: "확정일자 및 전입신고 보장", Status: StatusGood, Note: "임대인은 잔금 지급일에 즉시 전입신고 및 확정일자 부여를 받을 수 있도록 협조한다."},
			},
		},
		{
			Key:   "safety",
			Title: "범죄/치안",
			Rows: []Row{
				{Title: "방범 시설 분포(500m)", Status: StatusGood},
				{Title: "안전 귀갓길 체크", Status: StatusNeedsCheck},
				{Title: "동네 유흥업소 수 비교", Status: StatusGood, Note: "이 동네 8 · 인근 A 12 · 인근 B 5"},
				{Title: "지난해 범죄 발생 수 비교", Status: StatusNeedsCheck, Note: "출처: 경찰청 · 폭력/사기/절도/성폭행(4종) 기준"},
			},
		},
		{
			Key:   "life",
			Title: "생활/편의",
			Rows: []Row{
				{Title: "편의 시설(500m)", Status: StatusGood},
				{Title: "내 동네와 비교하기", Status: StatusNeedsCheck, Note: "편의점 · 대형마트 · 대중교통 · 교육/학원가 · 외식/카페 · 병원/약국"},
			},
		},
	}
}
