package pdflayout

import (
	"math"
	"sort"

	"github.com/ledongthuc/pdf"
)

// groupIntoRows buckets positioned text elements into visual lines.
// Elements whose Y coordinates differ by less than tolerance share a
// row. Rows are returned top-to-bottom (PDF Y grows upward, so larger
// Y means higher on the page) and each row is sorted left-to-right.
func groupIntoRows(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	type row struct {
		y     float64
		texts []pdf.Text
	}

	var rows []row
	for _, t := range texts {
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-t.Y) < tolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: t.Y, texts: []pdf.Text{t}})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].y > rows[j].y
	})

	out := make([][]pdf.Text, 0, len(rows))
	for _, r := range rows {
		sort.Slice(r.texts, func(i, j int) bool {
			return r.texts[i].X < r.texts[j].X
		})
		out = append(out, r.texts)
	}
	return out
}
