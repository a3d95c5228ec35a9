package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrNoAPIKey = errors.New("openai: api key not configured")

// OpenAIAdvisor asks a chat model for the opinion line.
type OpenAIAdvisor struct {
	model string
	opts  []option.RequestOption
}

func NewOpenAIAdvisor(apiKey, model, baseURL string) (*OpenAIAdvisor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIAdvisor{model: model, opts: opts}, nil
}

func (a *OpenAIAdvisor) Opinion(ctx context.Context, req OpinionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	client := openai.NewClient(a.opts...)

	system := "당신은 부동산 안전진단 리포트의 요약 의견을 작성하는 어시스턴트입니다. " +
		"두 문장 이내의 한국어로, 과장 없이 핵심 결론만 작성하세요."
	user := fmt.Sprintf(
		"주소: %s\n거래: %s\n가격: %s\n계약기간: %d년\n주의 항목: %d건\n확인 불가 항목: %d건",
		req.RoadAddress, req.Purpose, req.PriceLine, req.ContractYears, req.WarnCount, req.NeutralCount)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: opinion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
