package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "paragraphs only",
			doc:  "first paragraph here\n\nsecond one\n\n\n\nthird",
			want: []string{"first paragraph here", "second one", "third"},
		},
		{
			name: "blank lines with whitespace",
			doc:  "alpha\n   \n\t\nbeta",
			want: []string{"alpha", "beta"},
		},
		{
			name: "speaker turns in one paragraph",
			doc:  "John: hello there\nhow are you\nSpeaker 1: fine\nJohn: good",
			want: []string{"John: hello there\nhow are you", "Speaker 1: fine", "John: good"},
		},
		{
			name: "text before first label",
			doc:  "we joined late\nAlice: welcome\nBob: thanks",
			want: []string{"we joined late", "Alice: welcome", "Bob: thanks"},
		},
		{
			name: "lowercase token is not a label",
			doc:  "note: this is not a speaker\nstill the same paragraph",
			want: []string{"note: this is not a speaker\nstill the same paragraph"},
		},
		{
			name: "crlf line endings",
			doc:  "Ann: one\r\nBen: two\r\n\r\nclosing remarks",
			want: []string{"Ann: one", "Ben: two", "closing remarks"},
		},
		{
			name: "whitespace only",
			doc:  " \n\n \t \n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(Split(tt.doc)))
		})
	}
}

func TestSplitWordCounts(t *testing.T) {
	segs := Split("Kim: one two three\nLee: four five")
	require.Len(t, segs, 2)
	assert.Equal(t, 3, segs[0].Words)
	assert.Equal(t, 2, segs[1].Words)
}

func TestSplitLongLabelIsNotSpeaker(t *testing.T) {
	long := strings.Repeat("A", 40) + ": text"
	segs := Split("intro\n" + long)
	assert.Len(t, segs, 1)
}

func TestIsSpeakerLabel(t *testing.T) {
	assert.True(t, IsSpeakerLabel("John: hi"))
	assert.True(t, IsSpeakerLabel("  Speaker 1: hi"))
	assert.False(t, IsSpeakerLabel("john: hi"))
	assert.False(t, IsSpeakerLabel("No colon here"))
}

func TestSpeakerLabel(t *testing.T) {
	label, rest, ok := SpeakerLabel("Speaker 1: good morning")
	require.True(t, ok)
	assert.Equal(t, "Speaker 1:", label)
	assert.Equal(t, " good morning", rest)

	_, rest, ok = SpeakerLabel("plain line")
	assert.False(t, ok)
	assert.Equal(t, "plain line", rest)
}
