package arena

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/arena/internal/llm"
	"github.com/agenthands/arena/internal/model"
)

const questionPrompt = `You are an expert at creating challenging but clear questions.
Generate ONE challenging question%s that:
1. Tests reasoning and analytical capabilities
2. Has no obvious answer but can be reasoned about
3. Requires detailed explanation and analysis
4. Is clear and unambiguous
5. Can be answered without external resources

Return ONLY the question text, no preamble or explanation.`

// GenerateQuestion asks the given provider for a single challenge question,
// optionally steered toward a seed topic. An error from the provider or a
// blank reply is fatal to the round, since there is nothing to dispatch.
func GenerateQuestion(ctx context.Context, provider llm.Client, seed string) (model.Question, error) {
	topic := ""
	if strings.TrimSpace(seed) != "" {
		topic = fmt.Sprintf(" about %s", strings.TrimSpace(seed))
	}

	text, err := provider.Generate(ctx, fmt.Sprintf(questionPrompt, topic))
	if err != nil {
		return model.Question{}, fmt.Errorf("generating question: %w", err)
	}

	q, err := model.NewQuestion(strings.TrimSpace(text))
	if err != nil {
		return model.Question{}, fmt.Errorf("generating question: provider returned empty text")
	}
	return q, nil
}
