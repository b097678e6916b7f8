package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	r, err := ParseReply("Header line\nfoo,bar\nbaz")
	require.NoError(t, err)

	assert.Equal(t, "Header line", r.FirstLine)
	assert.Equal(t, "foo,bar\nbaz", r.Remainder)
	row, ok := r.Candidate()
	require.True(t, ok)
	assert.Equal(t, []string{"foo", "bar"}, row)
}

func TestParseReplyNoNewline(t *testing.T) {
	r, err := ParseReply("onlyheader")

	assert.ErrorIs(t, err, ErrInvalidReply)
	assert.Equal(t, "", r.Remainder)
	_, ok := r.Candidate()
	assert.False(t, ok)
}

// The first line is dropped before looking for rows, even when it is the
// only line carrying comma-separated data. This mirrors the shipped
// behavior; models that answer with the row first lose it.
func TestParseReplyDiscardsFirstLineEvenWhenItIsTheRow(t *testing.T) {
	r, err := ParseReply("apple,3,1.50\nHere is the row you asked for.")

	assert.ErrorIs(t, err, ErrInvalidReply)
	assert.Equal(t, "apple,3,1.50", r.FirstLine)
	assert.Equal(t, "Here is the row you asked for.", r.Remainder)
	assert.Empty(t, r.Rows)
}

func TestParseReplyKeepsCellsUntrimmed(t *testing.T) {
	r, err := ParseReply("Sure:\n\nplum, 7 ,\n")
	require.NoError(t, err)

	assert.Equal(t, "plum, 7 ,", r.Remainder)
	assert.Equal(t, [][]string{{"plum", " 7 ", ""}}, r.Rows)
}

func TestParseReplyFirstCommaLineWins(t *testing.T) {
	r, err := ParseReply("Result\nno commas here\nx,y\nz,w")
	require.NoError(t, err)

	assert.Len(t, r.Rows, 2)
	row, _ := r.Candidate()
	assert.Equal(t, []string{"x", "y"}, row)
}
