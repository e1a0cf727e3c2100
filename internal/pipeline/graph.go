package pipeline

import (
	"fmt"
	"strings"
)

const (
	NodeStart      = "__start__"
	NodeInput      = "input"
	NodeTranscript = "transcript"
	NodeSummary    = "summary"
	NodeEnd        = "__end__"
)

// Graph describes the stage layout for diagram export. It is data only and
// is never executed.
type Graph struct {
	Nodes []string
	Edges [][2]string
}

// StageGraph is the fixed linear layout of the pipeline variant.
var StageGraph = Graph{
	Nodes: []string{NodeStart, NodeInput, NodeTranscript, NodeSummary, NodeEnd},
	Edges: [][2]string{
		{NodeStart, NodeInput},
		{NodeInput, NodeTranscript},
		{NodeTranscript, NodeSummary},
		{NodeSummary, NodeEnd},
	},
}

func isTerminal(node string) bool {
	return node == NodeStart || node == NodeEnd
}

// Mermaid renders the graph as a Mermaid flowchart.
func (g Graph) Mermaid() string {
	var sb strings.Builder
	sb.WriteString("---\nconfig:\n  flowchart:\n    curve: linear\n---\n")
	sb.WriteString("graph TD;\n")
	for _, n := range g.Nodes {
		switch n {
		case NodeStart:
			fmt.Fprintf(&sb, "\t%s([<p>%s</p>]):::first\n", n, n)
		case NodeEnd:
			fmt.Fprintf(&sb, "\t%s([<p>%s</p>]):::last\n", n, n)
		default:
			fmt.Fprintf(&sb, "\t%s(%s)\n", n, n)
		}
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "\t%s --> %s;\n", e[0], e[1])
	}
	sb.WriteString("\tclassDef default fill:#f2f0ff,line-height:1.2\n")
	sb.WriteString("\tclassDef first fill-opacity:0\n")
	sb.WriteString("\tclassDef last fill:#bfb6fc\n")
	return sb.String()
}

// DOT renders the graph in Graphviz syntax.
func (g Graph) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph pipeline {\n")
	sb.WriteString("\trankdir=TB;\n")
	for _, n := range g.Nodes {
		shape := "box"
		if isTerminal(n) {
			shape = "oval"
		}
		fmt.Fprintf(&sb, "\t%q [shape=%s];\n", n, shape)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "\t%q -> %q;\n", e[0], e[1])
	}
	sb.WriteString("}\n")
	return sb.String()
}
