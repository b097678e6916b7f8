package assistant

import "strings"

// Reply is a model answer split for display and write-back.
type Reply struct {
	// FirstLine is discarded; only Remainder is shown and mined for rows.
	FirstLine string
	// Remainder is everything after the first line, trimmed.
	Remainder string
	// Rows holds every remainder line that contains a comma, split on commas.
	Rows [][]string
}

// Candidate returns the row written back, if any.
func (r Reply) Candidate() ([]string, bool) {
	if len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// ParseReply splits reply on its first newline and collects comma-bearing
// lines of the remainder. It returns ErrInvalidReply, along with the parsed
// Reply, when no such line exists.
func ParseReply(reply string) (Reply, error) {
	first, rest, _ := strings.Cut(reply, "\n")
	r := Reply{
		FirstLine: first,
		Remainder: strings.TrimSpace(rest),
	}

	for _, line := range strings.Split(r.Remainder, "\n") {
		if strings.Contains(line, ",") {
			r.Rows = append(r.Rows, strings.Split(line, ","))
		}
	}
	if len(r.Rows) == 0 {
		return r, ErrInvalidReply
	}
	return r, nil
}
