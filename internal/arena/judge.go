package arena

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/agenthands/arena/internal/common"
	"github.com/agenthands/arena/internal/llm"
	"github.com/agenthands/arena/internal/model"
)

const judgePromptTemplate = `You are judging a competition between {{len .Entries}} anonymous competitors.
Each competitor was given this question:

{{.Question}}

Evaluate each response for clarity and strength of argument, and rank the
competitors in order of best to worst.
Respond with JSON, and only JSON, in this format:
{"results": ["<label of best response>", "<label of second best>", ...], "reasoning": "<one short paragraph>"}

Here are the responses:

{{range .Entries}}{{.Label}}:
{{.Text}}

{{end}}Now respond with the JSON with the ranked order of the labels, nothing else.
Do not include markdown formatting or code blocks.`

var judgeTmpl = template.Must(template.New("judge").Parse(judgePromptTemplate))

// JudgeParseError means the arbiter answered but its verdict could not be
// recovered as a complete ranking. The raw reply is kept for logging.
type JudgeParseError struct {
	Reason string
	Raw    string
}

func (e *JudgeParseError) Error() string {
	return fmt.Sprintf("unusable judge verdict: %s", e.Reason)
}

// Judge runs the blind evaluation against the arbiter provider.
type Judge struct {
	arbiter llm.Client
}

func NewJudge(arbiter llm.Client) *Judge {
	return &Judge{arbiter: arbiter}
}

type verdict struct {
	Results   []string `json:"results"`
	Reasoning string   `json:"reasoning"`
}

// Evaluate submits the anonymized entries and returns the ranked labels,
// best first, plus the arbiter's rationale when it gave one. The ranking is
// only accepted if it covers every label exactly once.
func (j *Judge) Evaluate(ctx context.Context, question model.Question, entries []Entry) ([]string, string, error) {
	if len(entries) == 0 {
		return nil, "", fmt.Errorf("no responses to evaluate")
	}

	data := struct {
		Question string
		Entries  []Entry
	}{Question: question.Text, Entries: entries}

	var buf bytes.Buffer
	if err := judgeTmpl.Execute(&buf, data); err != nil {
		return nil, "", fmt.Errorf("executing judge template: %w", err)
	}

	raw, err := j.arbiter.Generate(ctx, buf.String())
	if err != nil {
		return nil, "", fmt.Errorf("arbiter query failed: %w", err)
	}

	v, err := common.ParseJSON[verdict](raw)
	if err != nil {
		return nil, "", &JudgeParseError{Reason: err.Error(), Raw: raw}
	}

	ranked, err := normalizeRanking(v.Results, entries)
	if err != nil {
		return nil, "", &JudgeParseError{Reason: err.Error(), Raw: raw}
	}
	return ranked, strings.TrimSpace(v.Reasoning), nil
}

// normalizeRanking maps the arbiter's label strings onto the known labels
// and rejects anything short of a full permutation: no omissions, no
// duplicates, no labels the arbiter invented.
func normalizeRanking(results []string, entries []Entry) ([]string, error) {
	known := make(map[string]string, len(entries)) // normalized -> canonical
	for _, e := range entries {
		known[normalizeLabel(e.Label)] = e.Label
	}

	if len(results) != len(entries) {
		return nil, fmt.Errorf("ranking has %d entries, expected %d", len(results), len(entries))
	}

	ranked := make([]string, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		canonical, ok := known[normalizeLabel(r)]
		if !ok {
			return nil, fmt.Errorf("unknown label %q in ranking", r)
		}
		if seen[canonical] {
			return nil, fmt.Errorf("label %q ranked twice", canonical)
		}
		seen[canonical] = true
		ranked = append(ranked, canonical)
	}
	return ranked, nil
}

// normalizeLabel tolerates minor formatting drift in the arbiter's reply:
// case, surrounding whitespace, and a dropped "Response" prefix ("A" for
// "Response A").
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "response")
	return strings.TrimSpace(s)
}
