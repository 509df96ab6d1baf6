package interview

import (
	"fmt"
	"strings"

	"citizen-interview/internal/scoring"
)

// Edge переход автомата. Label непустой, если переход зависит от решения.
type Edge struct {
	From  State
	To    State
	Label string
}

var graphStates = []State{
	StateSetup,
	StateAsking,
	StateAwaitingAnswer,
	StateJudging,
	StateConcluding,
}

var graphDecisions = []scoring.Decision{
	scoring.Continue,
	scoring.EarlyPass,
	scoring.EarlyFail,
	scoring.Exhausted,
}

// Graph перечисляет переходы, получая их из той же функции transition, что и Run
func Graph() []Edge {
	var edges []Edge
	for _, from := range graphStates {
		targets := map[State][]string{}
		var order []State
		for _, d := range graphDecisions {
			to := transition(from, d)
			if _, seen := targets[to]; !seen {
				order = append(order, to)
			}
			targets[to] = append(targets[to], string(d))
		}

		for _, to := range order {
			edge := Edge{From: from, To: to}
			if len(order) > 1 {
				edge.Label = strings.Join(targets[to], " | ")
			}
			edges = append(edges, edge)
		}
	}
	return edges
}

// Mermaid диаграмма переходов в формате Mermaid
func Mermaid(edges []Edge) string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")
	b.WriteString(fmt.Sprintf("    [*] --> %s\n", StateSetup))
	for _, e := range edges {
		if e.Label == "" {
			b.WriteString(fmt.Sprintf("    %s --> %s\n", e.From, e.To))
			continue
		}
		b.WriteString(fmt.Sprintf("    %s --> %s: %s\n", e.From, e.To, e.Label))
	}
	b.WriteString(fmt.Sprintf("    %s --> [*]\n", StateConcluded))
	return b.String()
}
