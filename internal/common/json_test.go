package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Results []string `json:"results"`
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    []string
		wantErr bool
	}{
		{
			name:  "bare JSON",
			reply: `{"results": ["a", "b"]}`,
			want:  []string{"a", "b"},
		},
		{
			name:  "markdown fenced",
			reply: "```json\n{\"results\": [\"a\"]}\n```",
			want:  []string{"a"},
		},
		{
			name:  "surrounded by prose",
			reply: `Sure! Here is the ranking: {"results": ["b", "a"]} Hope that helps.`,
			want:  []string{"b", "a"},
		},
		{
			name:    "no object",
			reply:   "no json here",
			wantErr: true,
		},
		{
			name:    "malformed object",
			reply:   `{"results": ["a", }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON[payload](tt.reply)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Results)
		})
	}
}
