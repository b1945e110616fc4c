package internal

// UpdateHistory returns the slug history after a document's slug changes from
// previous to next. next is removed from the history and previous is moved to
// its end. An empty previous is not recorded. history is not modified.
func UpdateHistory(previous, next string, history []string) []string {
	if previous == next {
		return history
	}
	out := make([]string, 0, len(history)+1)
	for _, s := range history {
		if s == next || s == previous {
			continue
		}
		out = append(out, s)
	}
	if previous != "" {
		out = append(out, previous)
	}
	return out
}
