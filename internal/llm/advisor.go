// Package llm produces the report's AI comprehensive-opinion line. The
// heuristic provider keeps the app fully offline; the OpenAI provider is
// used when a key is configured.
package llm

import "context"

// OpinionRequest carries the report facts the advisor may comment on.
type OpinionRequest struct {
	RoadAddress   string
	Purpose       string // 전세/월세/매매
	PriceLine     string
	ContractYears int
	WarnCount     int // checks in the warning tier
	NeutralCount  int // checks that could not be verified
}

// Advisor writes a short Korean opinion for the report header.
type Advisor interface {
	Opinion(ctx context.Context, req OpinionRequest) (string, error)
}
