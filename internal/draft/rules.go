package draft

// Step gating. Each rule is a pure predicate over a draft snapshot; a false
// result means the primary action stays disabled (or, at the address step,
// surfaces an inline notice). Nothing here ever mutates the draft.

// TradeReady reports whether the trade-info step may advance.
//
// 매매 needs only a positive sale price. 전세/월세 need their money fields
// positive plus a contract period; a custom period additionally needs a
// positive year count.
func TradeReady(d Draft) bool {
	if d.Purpose == PurposeMaemae {
		return positive(d.SalePriceWon)
	}

	hasMoney := positive(d.DepositWon)
	if d.Purpose == PurposeWolse {
		hasMoney = hasMoney && positive(d.MonthlyRentWon)
	}

	hasPeriod := d.ContractPeriodType != ""
	if d.ContractPeriodType == PeriodCustom {
		hasPeriod = d.ContractPeriodYears != nil && *d.ContractPeriodYears > 0
	}
	return hasMoney && hasPeriod
}

// AddressReady reports whether the address step may advance. requiresUnit is
// the catalog flag of the selected address; when set, both 동 and 호 must be
// chosen.
func AddressReady(d Draft, requiresUnit bool) bool {
	if d.AddressSelected == "" {
		return false
	}
	if !requiresUnit {
		return true
	}
	return d.UnitDong != "" && d.UnitHo != ""
}

// PayReady reports whether payment may proceed: every required agreement
// checked, a payment method picked, and a plan chosen.
func PayReady(d Draft, requiredAgreements []bool, methodSelected bool) bool {
	for _, ok := range requiredAgreements {
		if !ok {
			return false
		}
	}
	return methodSelected && d.PaymentPlan != ""
}

// TicketSelectable reports whether the ticket plan may be offered.
func TicketSelectable(d Draft) bool {
	return d.TicketRemaining > 0
}

func positive(p *int64) bool {
	return p != nil && *p > 0
}
