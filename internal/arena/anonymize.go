package arena

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/agenthands/arena/internal/model"
)

// Entry is one anonymized answer as the arbiter sees it: an opaque label
// and the text, nothing else.
type Entry struct {
	Label string
	Text  string
}

// Anonymize labels the successful outcomes for blind judging and returns
// the entries alongside the label -> provider map needed to reverse the
// mapping afterwards. The success set is shuffled before lettering so label
// order carries no information about provider identity or map iteration
// order. Zero successes yield a nil entry slice; the caller must then skip
// the arbiter entirely.
func Anonymize(results model.ResultSet) ([]Entry, map[string]string) {
	names := results.Successes()
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	labels := make(map[string]string, len(names))
	for i, j := range rand.Perm(len(names)) {
		name := names[j]
		label := entryLabel(i)
		entries = append(entries, Entry{Label: label, Text: results[name].Answer.Text})
		labels[label] = name
	}
	return entries, labels
}

// entryLabel letters entries "Response A".."Response Z", then "Response AA"
// onwards. Rounds rarely have more than a handful of providers.
func entryLabel(i int) string {
	s := ""
	for {
		s = string(rune('A'+i%26)) + s
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return fmt.Sprintf("Response %s", s)
}
