package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON extracts and unmarshals the first JSON object found in an LLM
// reply. Models are told to answer with bare JSON but frequently wrap it in
// markdown fences or prose anyway, so everything outside the outermost
// braces is stripped before unmarshalling.
func ParseJSON[T any](reply string) (T, error) {
	var out T

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end < start {
		return out, fmt.Errorf("no JSON object found in reply")
	}

	if err := json.Unmarshal([]byte(reply[start:end+1]), &out); err != nil {
		return out, fmt.Errorf("unmarshalling reply JSON: %w", err)
	}
	return out, nil
}
