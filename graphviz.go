package house

import (
	"github.com/enetx/g"

	"github.com/dwelve/house/latch"
)

// edge is one transition arrow in a capability machine diagram.
type edge struct {
	from, to, label g.String
}

// writeMachine renders one capability machine as a labeled cluster. Node
// ids are prefixed with the machine name so several machines can share a
// graph. The current state is highlighted the same way the current FSM
// state is in common DOT renderings: green double circle.
func writeMachine(b *g.Builder, name g.String, states g.Slice[g.String], edges g.Slice[edge], current g.String) {
	b.WriteString(g.Format("  subgraph cluster_{} ", name))
	b.WriteString("{\n")
	b.WriteString(g.Format("    label=\"{}\";\n", name))
	b.WriteString("    style=rounded;\n")

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		if state == current {
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("    \"{}_{}\" [{}];\n", name, state, attrs.Join(", ")))
	}

	for e := range edges.Iter() {
		b.WriteString(g.Format("    \"{}_{}\" -> \"{}_{}\" [label=\" {} \"];\n", name, e.from, name, e.to, e.label))
	}

	b.WriteString("  }\n")
}

func writeHeader(b *g.Builder, title g.String) {
	b.WriteString(g.Format("digraph {} ", title))
	b.WriteString("{\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")
}

// ToDOT generates a DOT language representation of the door's two
// capability machines for visualization.
func (d *Door) ToDOT() g.String {
	b := g.NewBuilder()

	writeHeader(b, "Door")

	writeMachine(b, "openable",
		g.SliceOf[g.String]("closed", "open"),
		g.SliceOf(
			edge{from: "closed", to: "open", label: "open"},
			edge{from: "open", to: "closed", label: "close"},
		),
		g.String(d.open.String()),
	)

	writeMachine(b, "lockable",
		g.SliceOf[g.String]("unlocked", "locked"),
		g.SliceOf(
			edge{from: "unlocked", to: "locked", label: "lock"},
			edge{from: "locked", to: "unlocked", label: "unlock"},
		),
		g.String(d.lock.String()),
	)

	b.WriteString("}\n")

	return b.String()
}

// ToDOT generates a DOT language representation of the window's fused
// latch machine. The graph makes the asymmetry visible: locked has no
// outgoing edge.
func (w *Window) ToDOT() g.String {
	b := g.NewBuilder()

	writeHeader(b, "Window")

	writeMachine(b, "latch",
		g.SliceOf[g.String](
			g.String(latch.ClosedAndUnlocked.String()),
			g.String(latch.Open.String()),
			g.String(latch.Locked.String()),
		),
		g.SliceOf(
			edge{from: "closed_and_unlocked", to: "open", label: "open"},
			edge{from: "open", to: "closed_and_unlocked", label: "close"},
			edge{from: "closed_and_unlocked", to: "locked", label: "lock"},
		),
		g.String(w.state.String()),
	)

	b.WriteString("}\n")

	return b.String()
}
