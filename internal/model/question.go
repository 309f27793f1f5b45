package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Question is the single challenge prompt for one arena round.
// Immutable after creation; every provider in the round answers the same one.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func NewQuestion(text string) (Question, error) {
	if strings.TrimSpace(text) == "" {
		return Question{}, fmt.Errorf("question text cannot be empty")
	}
	return Question{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Preview returns the question text truncated to n runes for log lines.
func (q Question) Preview(n int) string {
	r := []rune(q.Text)
	if len(r) <= n {
		return q.Text
	}
	return string(r[:n]) + "..."
}
