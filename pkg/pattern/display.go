package pattern

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// WriteDisplay writes a human-readable listing to w: for
// every rank r found, from 0 upward, a header naming how many
// representatives sit at that rank followed by one line per
// representative, and finally the residual non-reducible set, if any.
// Colorings within a rank are listed in ascending integer order.
func (pr *PatternReducibility) WriteDisplay(w io.Writer) {
	byRank := make(map[int][]Coloring)
	var nonReducible []Coloring
	maxRank := -1

	for _, c := range pr.quot.allRepresentatives() {
		rec := pr.ranks.get(c)
		if rec.Rank == RankUnknown {
			nonReducible = append(nonReducible, c)
			continue
		}
		byRank[rec.Rank] = append(byRank[rec.Rank], c)
		if rec.Rank > maxRank {
			maxRank = rec.Rank
		}
	}

	for r := 0; r <= maxRank; r++ {
		colorings := byRank[r]
		slices.SortFunc(colorings, func(a, b Coloring) int {
			switch {
			case a.Int() < b.Int():
				return -1
			case a.Int() > b.Int():
				return 1
			default:
				return 0
			}
		})

		if len(colorings) == 1 {
			fmt.Fprintf(w, "There is 1 coloration of rank %d:\n", r)
		} else {
			fmt.Fprintf(w, "There are %d colorations of rank %d:\n", len(colorings), r)
		}
		for _, c := range colorings {
			rec := pr.ranks.get(c)
			fmt.Fprintf(w, "(%s) because %s.\n", formatColoring(c), rec.Reason)
		}
	}

	fmt.Fprintln(w, "Non reducible colorations:")
	for _, c := range nonReducible {
		fmt.Fprintf(w, "(%s)\n", formatColoring(c))
	}
}

func formatColoring(c Coloring) string {
	out := ""
	for i, x := range c {
		if i > 0 {
			out += ", "
		}
		out += x.String()
	}
	return out
}
