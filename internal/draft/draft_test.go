package draft

import "testing"

func won(v int64) *int64 { return &v }

func years(v int) *int { return &v }

func TestWithPurposeResetsDependentFields(t *testing.T) {
	purposes := []Purpose{PurposeJeonse, PurposeWolse, PurposeMaemae}
	for _, from := range purposes {
		for _, to := range purposes {
			d := Default()
			d.Purpose = from
			d.DepositWon = won(50000)
			d.MonthlyRentWon = won(500000)
			d.SalePriceWon = won(300000000)
			d.ContractPeriodType = PeriodCustom
			d.ContractPeriodYears = years(3)
			d.AddressSelected = "서울시 마포구 월드컵북로 400"
			d.TicketRemaining = 1

			got := WithPurpose(d, to)
			if got.Purpose != to {
				t.Fatalf("purpose %s->%s: purpose = %s", from, to, got.Purpose)
			}
			if got.DepositWon != nil || got.MonthlyRentWon != nil || got.SalePriceWon != nil {
				t.Errorf("purpose %s->%s: money fields not cleared", from, to)
			}
			if got.ContractPeriodType != "" || got.ContractPeriodYears != nil {
				t.Errorf("purpose %s->%s: contract fields not cleared", from, to)
			}
			// unrelated fields survive
			if got.AddressSelected != d.AddressSelected || got.TicketRemaining != 1 {
				t.Errorf("purpose %s->%s: unrelated fields changed", from, to)
			}
		}
	}
}

func TestWithPeriodTypeRecordsYears(t *testing.T) {
	d := Default()
	d = WithPeriodType(d, PeriodOneYear)
	if d.ContractPeriodYears == nil || *d.ContractPeriodYears != 1 {
		t.Fatalf("1y should record 1 year, got %v", d.ContractPeriodYears)
	}
	d = WithPeriodType(d, PeriodTwoYear)
	if d.ContractPeriodYears == nil || *d.ContractPeriodYears != 2 {
		t.Fatalf("2y should record 2 years, got %v", d.ContractPeriodYears)
	}
	d.ContractPeriodYears = years(5)
	d = WithPeriodType(d, PeriodCustom)
	if d.ContractPeriodYears == nil || *d.ContractPeriodYears != 5 {
		t.Fatalf("custom should keep typed years, got %v", d.ContractPeriodYears)
	}
}

func TestWithAddressClearsUnit(t *testing.T) {
	d := Default()
	d = WithAddress(d, "서울시 강남구 역삼로 123")
	d.UnitDong = "101"
	d.UnitHo = "201"
	d = WithAddress(d, "서울시 송파구 올림픽로 300")
	if d.UnitDong != "" || d.UnitHo != "" {
		t.Fatalf("re-selecting an address must clear 동/호, got %q/%q", d.UnitDong, d.UnitHo)
	}
	if d.AddressSelected != "서울시 송파구 올림픽로 300" {
		t.Fatalf("address not updated: %q", d.AddressSelected)
	}
}

func TestContractYears(t *testing.T) {
	d := Default()
	if d.ContractYears() != 0 {
		t.Fatal("unset period should resolve to 0")
	}
	d = WithPeriodType(d, PeriodTwoYear)
	if d.ContractYears() != 2 {
		t.Fatalf("2y = %d years", d.ContractYears())
	}
	d = WithPeriodType(d, PeriodCustom)
	d.ContractPeriodYears = years(4)
	if d.ContractYears() != 4 {
		t.Fatalf("custom = %d years", d.ContractYears())
	}
	d = WithPurpose(d, PurposeMaemae)
	if d.ContractYears() != 0 {
		t.Fatal("매매 has no contract period")
	}
}

func TestConsumeTicketFloorsAtZero(t *testing.T) {
	d := Default()
	if d.TicketRemaining != 1 {
		t.Fatalf("default ticket balance = %d, want 1", d.TicketRemaining)
	}
	d = ConsumeTicket(d)
	if d.TicketRemaining != 0 {
		t.Fatalf("after one issuance = %d, want 0", d.TicketRemaining)
	}
	d = ConsumeTicket(d)
	if d.TicketRemaining != 0 {
		t.Fatalf("balance went below zero: %d", d.TicketRemaining)
	}
}
