package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"citizen-interview/internal/scoring"
)

func TestGraph_FollowsTransition(t *testing.T) {
	edges := Graph()

	assert.Equal(t, []Edge{
		{From: StateSetup, To: StateAsking},
		{From: StateAsking, To: StateAwaitingAnswer},
		{From: StateAwaitingAnswer, To: StateJudging},
		{From: StateJudging, To: StateAsking, Label: "continue"},
		{From: StateJudging, To: StateConcluding, Label: "early_pass | early_fail | exhausted"},
		{From: StateConcluding, To: StateConcluded},
	}, edges)

	for _, e := range edges {
		assert.Equal(t, e.To, transition(e.From, firstDecision(e)), "%s -> %s", e.From, e.To)
	}
}

func TestMermaid(t *testing.T) {
	out := Mermaid(Graph())

	assert.Contains(t, out, "stateDiagram-v2\n")
	assert.Contains(t, out, "    [*] --> setup\n")
	assert.Contains(t, out, "    judging --> asking: continue\n")
	assert.Contains(t, out, "    judging --> concluding: early_pass | early_fail | exhausted\n")
	assert.Contains(t, out, "    concluded --> [*]\n")
}

func firstDecision(e Edge) scoring.Decision {
	if e.Label == "" || e.Label == string(scoring.Continue) {
		return scoring.Continue
	}
	return scoring.EarlyPass
}
