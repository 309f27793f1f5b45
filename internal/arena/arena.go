// Package arena orchestrates one round of a blind model competition:
// generate a question, fan it out to every provider under independent
// deadlines, anonymize the surviving answers, and have the arbiter rank
// them without knowing who wrote what.
package arena

import (
	"context"
	"log"
	"time"

	"github.com/agenthands/arena/internal/llm"
	"github.com/agenthands/arena/internal/model"
)

// Arena wires the providers, the arbiter, and the round settings together.
// It holds no cross-run state; every Run owns its own result set, label map
// and report.
type Arena struct {
	providers    map[string]llm.Client
	arbiter      llm.Client
	judge        *Judge
	timeout      time.Duration
	shortAnswers bool
}

type Option func(*Arena)

// WithShortAnswers controls whether providers are asked to keep answers to
// three sentences. On by default.
func WithShortAnswers(on bool) Option {
	return func(a *Arena) { a.shortAnswers = on }
}

// New builds an arena. The arbiter also generates the round's question; it
// may additionally appear in providers as a competitor.
func New(providers map[string]llm.Client, arbiter llm.Client, timeout time.Duration, opts ...Option) *Arena {
	a := &Arena{
		providers:    providers,
		arbiter:      arbiter,
		judge:        NewJudge(arbiter),
		timeout:      timeout,
		shortAnswers: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

const shortAnswerSuffix = "\n\nPlease answer in no more than three sentences."

// Run executes one full round and returns its report. Provider-level
// timeouts and failures land in the report, never in the error. A verdict
// the judge could not parse degrades the report to Unjudged and is also
// returned so callers can log it; the report stays usable either way.
func (a *Arena) Run(ctx context.Context, seed string) (*model.Report, error) {
	question, err := GenerateQuestion(ctx, a.arbiter, seed)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated question %s: %s", question.ID, question.Preview(80))

	dispatched := question
	if a.shortAnswers {
		dispatched.Text += shortAnswerSuffix
	}

	results, err := Dispatch(ctx, dispatched, a.providers, a.timeout)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Question: question,
		Failed:   results.Failures(),
	}

	entries, labels := Anonymize(results)
	if len(entries) == 0 {
		log.Printf("No responses to evaluate; skipping the arbiter")
		report.Unjudged = true
		return report, nil
	}

	ranked, rationale, err := a.judge.Evaluate(ctx, question, entries)
	if err != nil {
		// No ranking, but the answers themselves survive the round.
		report.Unjudged = true
		report.Unranked = results.Answers()
		return report, err
	}

	texts := make(map[string]string, len(entries))
	for _, e := range entries {
		texts[e.Label] = e.Text
	}
	for i, label := range ranked {
		report.Ranking = append(report.Ranking, model.RankedAnswer{
			Rank:     i + 1,
			Provider: labels[label],
			Text:     texts[label],
		})
	}
	report.Rationale = rationale

	// The label map dies with this frame; nothing downstream sees it.
	return report, nil
}
