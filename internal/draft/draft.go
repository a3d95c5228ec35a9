// Package draft holds the in-progress record of one diagnosis purchase
// session and the rules that gate each wizard step.
package draft

// Purpose is the transaction type being diagnosed.
type Purpose string

const (
	PurposeJeonse Purpose = "jeonse" // 전세
	PurposeWolse  Purpose = "wolse"  // 월세
	PurposeMaemae Purpose = "maemae" // 매매
)

// Label returns the Korean display name.
func (p Purpose) Label() string {
	switch p {
	case PurposeJeonse:
		return "전세"
	case PurposeWolse:
		return "월세"
	case PurposeMaemae:
		return "매매"
	}
	return string(p)
}

// ContractPeriodType selects how the contract length is entered.
type ContractPeriodType string

const (
	PeriodOneYear ContractPeriodType = "1y"
	PeriodTwoYear ContractPeriodType = "2y"
	PeriodCustom  ContractPeriodType = "custom"
)

// PaymentPlan is how the report issuance is funded.
type PaymentPlan string

const (
	PlanOnce   PaymentPlan = "once"   // 일시불
	PlanFive   PaymentPlan = "five"   // 5회 분할
	PlanTicket PaymentPlan = "ticket" // 이용권 차감
)

// Draft is the single mutable record for one wizard session. Money amounts
// are in won; nil means "not entered". It is never persisted.
type Draft struct {
	Purpose             Purpose
	DepositWon          *int64
	MonthlyRentWon      *int64
	SalePriceWon        *int64
	ContractPeriodType  ContractPeriodType
	ContractPeriodYears *int

	AddressQuery    string
	AddressSelected string
	UnitDong        string
	UnitHo          string

	PaymentPlan     PaymentPlan
	TicketRemaining int
}

// Default returns a fresh draft for a new session.
func Default() Draft {
	return Draft{
		Purpose:         PurposeJeonse,
		TicketRemaining: 1,
	}
}

// WithPurpose returns d with the purpose switched. Every money and contract
// field is cleared in the same step, so no reader can observe old amounts
// attached to the new purpose.
func WithPurpose(d Draft, p Purpose) Draft {
	d.Purpose = p
	d.DepositWon = nil
	d.MonthlyRentWon = nil
	d.SalePriceWon = nil
	d.ContractPeriodType = ""
	d.ContractPeriodYears = nil
	return d
}

// WithPeriodType returns d with the contract period type set. Picking a fixed
// term also records the concrete year count; picking custom keeps whatever
// the user already typed.
func WithPeriodType(d Draft, t ContractPeriodType) Draft {
	d.ContractPeriodType = t
	switch t {
	case PeriodOneYear:
		one := 1
		d.ContractPeriodYears = &one
	case PeriodTwoYear:
		two := 2
		d.ContractPeriodYears = &two
	}
	return d
}

// WithAddress returns d with the selected address. Choosing a different
// address invalidates any previously chosen 동/호.
func WithAddress(d Draft, road string) Draft {
	d.AddressSelected = road
	d.UnitDong = ""
	d.UnitHo = ""
	return d
}

// ContractYears resolves the effective contract length, or 0 if none applies.
func (d Draft) ContractYears() int {
	if d.Purpose == PurposeMaemae {
		return 0
	}
	switch d.ContractPeriodType {
	case PeriodOneYear:
		return 1
	case PeriodTwoYear:
		return 2
	case PeriodCustom:
		if d.ContractPeriodYears != nil {
			return *d.ContractPeriodYears
		}
	}
	return 0
}

// ConsumeTicket decrements the ticket balance by one, never below zero.
func ConsumeTicket(d Draft) Draft {
	if d.TicketRemaining > 0 {
		d.TicketRemaining--
	}
	return d
}
