// Package repository provides typed access to the sqlite tables.
package repository

import "time"

// Address is one catalog row. The catalog is read-only seed data; RequiresUnit
// marks addresses where a 동/호 must be chosen before continuing.
type Address struct {
	ID           string
	RoadAddress  string
	RequiresUnit bool
}

// Report is one issued diagnosis report, written when an issuance completes
// and listed on the history screen.
type Report struct {
	ID            string
	RoadAddress   string
	UnitDong      string
	UnitHo        string
	Purpose       string
	PriceLine     string
	ContractYears int
	Plan          string
	Status        string
	IssuedAt      time.Time
}
