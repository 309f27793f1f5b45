package model

import "time"

// OutcomeKind is the terminal state of one provider's call.
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeTimeout OutcomeKind = "timeout"
	OutcomeFailure OutcomeKind = "failure"
)

// Answer is the payload of a successful provider call.
type Answer struct {
	Text    string        `json:"text"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Outcome records how one provider's call ended. Exactly one is created per
// dispatched provider per round and it is never mutated afterwards.
// Answer is non-nil iff Kind is OutcomeSuccess; Err is non-empty iff Kind is
// OutcomeFailure.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Answer *Answer     `json:"answer,omitempty"`
	Err    string      `json:"error,omitempty"`
}

func Succeeded(text string, elapsed time.Duration) Outcome {
	return Outcome{Kind: OutcomeSuccess, Answer: &Answer{Text: text, Elapsed: elapsed}}
}

func TimedOut() Outcome {
	return Outcome{Kind: OutcomeTimeout}
}

func Failed(cause string) Outcome {
	if cause == "" {
		cause = "unknown error"
	}
	return Outcome{Kind: OutcomeFailure, Err: cause}
}

// ResultSet maps provider name to its outcome for one round.
// Invariant: exactly one entry per dispatched provider, successes included.
type ResultSet map[string]Outcome

// Successes returns the names of providers that produced an answer.
func (rs ResultSet) Successes() []string {
	var names []string
	for name, o := range rs {
		if o.Kind == OutcomeSuccess {
			names = append(names, name)
		}
	}
	return names
}

// Answers returns provider name -> answer text for the successful outcomes.
func (rs ResultSet) Answers() map[string]string {
	answers := make(map[string]string)
	for name, o := range rs {
		if o.Kind == OutcomeSuccess {
			answers[name] = o.Answer.Text
		}
	}
	return answers
}

// Failures returns the subset of the result set that did not succeed.
func (rs ResultSet) Failures() map[string]Outcome {
	failed := make(map[string]Outcome)
	for name, o := range rs {
		if o.Kind != OutcomeSuccess {
			failed[name] = o
		}
	}
	return failed
}
