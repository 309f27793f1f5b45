package model

// RankedAnswer is one row of the final ranking, best first.
type RankedAnswer struct {
	Rank     int    `json:"rank"`
	Provider string `json:"provider"`
	Text     string `json:"text"`
}

// Report is the terminal artifact of one arena round, handed to presenters.
// Unjudged is set when the arbiter was skipped (no successful answers) or
// when its verdict could not be used; Failed always carries every
// non-success outcome so partial runs stay visible, and Unranked keeps the
// successful answers of an unjudged round from being lost with the ranking.
type Report struct {
	Question  Question           `json:"question"`
	Ranking   []RankedAnswer     `json:"ranking,omitempty"`
	Rationale string             `json:"rationale,omitempty"`
	Unranked  map[string]string  `json:"unranked,omitempty"`
	Failed    map[string]Outcome `json:"failed,omitempty"`
	Unjudged  bool               `json:"unjudged,omitempty"`
}
