package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateIdle, StateFetchingTranscript, true},
		{StateIdle, StateSummarizing, false},
		{StateIdle, StateFailed, false},
		{StateFetchingTranscript, StateSummarizing, true},
		{StateFetchingTranscript, StateFailed, true},
		{StateFetchingTranscript, StateDone, false},
		{StateSummarizing, StateDone, true},
		{StateSummarizing, StateFailed, true},
		{StateDone, StateFailed, false},
		{StateFailed, StateIdle, false},
		{StateDone, StateFetchingTranscript, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestSessionAdvanceRejectsIllegalMove(t *testing.T) {
	s := NewSession("u")
	assert.ErrorIs(t, s.advance(StateDone), ErrInvalidTransition)
	assert.Equal(t, StateIdle, s.State)

	assert.NoError(t, s.advance(StateFetchingTranscript))
	assert.NoError(t, s.advance(StateFailed))
	assert.True(t, s.State.Terminal())
	assert.ErrorIs(t, s.advance(StateSummarizing), ErrInvalidTransition)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "FetchingTranscript", StateFetchingTranscript.String())
	assert.True(t, strings.HasPrefix(State(42).String(), "State("))
}

func TestStageGraphRendering(t *testing.T) {
	mermaid := StageGraph.Mermaid()
	assert.Contains(t, mermaid, "graph TD;")
	assert.Contains(t, mermaid, "\t__start__ --> input;\n")
	assert.Contains(t, mermaid, "\tinput --> transcript;\n")
	assert.Contains(t, mermaid, "\ttranscript --> summary;\n")
	assert.Contains(t, mermaid, "\tsummary --> __end__;\n")

	dot := StageGraph.DOT()
	assert.True(t, strings.HasPrefix(dot, "digraph pipeline {"))
	assert.Contains(t, dot, `"input" -> "transcript";`)
	assert.Contains(t, dot, `"__end__" [shape=oval];`)
	assert.Contains(t, dot, `"summary" [shape=box];`)
}
