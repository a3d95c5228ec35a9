package llm

import (
	"context"
	"fmt"
)

// HeuristicAdvisor composes the opinion from fixed templates, so the report
// renders the same shape of text without any network dependency.
type HeuristicAdvisor struct{}

func NewHeuristicAdvisor() *HeuristicAdvisor { return &HeuristicAdvisor{} }

func (h *HeuristicAdvisor) Opinion(_ context.Context, req OpinionRequest) (string, error) {
	switch {
	case req.WarnCount >= 3:
		return fmt.Sprintf("확인이 필요한 항목이 %d건 발견되었습니다. 계약 전 반드시 각 항목을 점검하세요.", req.WarnCount), nil
	case req.WarnCount > 0:
		return fmt.Sprintf("전반적으로 양호하지만 확인이 필요한 항목이 %d건 있습니다. 상세 내용을 확인해주세요.", req.WarnCount), nil
	case req.NeutralCount > 0:
		return "주요 항목은 양호하나 일부 항목은 확인이 불가했습니다.", nil
	default:
		return "주요 점검 항목에서 특이사항이 발견되지 않았습니다.", nil
	}
}
