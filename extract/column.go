package extract

import (
	"context"
	"sort"

	"github.com/fwojciec/rezept"
)

const (
	// clusterGap is the normalized horizontal distance that separates two
	// column clusters.
	clusterGap = 0.1

	// clusterTolerance is how far a line center may sit from a cluster
	// center and still belong to the column.
	clusterTolerance = 0.15

	// minColumnLines is the smallest number of lines a column needs.
	minColumnLines = 3

	// minColumnScore is the evidence threshold: at least one column must
	// score this many recipe-like lines.
	minColumnScore = 2

	// minPositionedLines is the minimum number of positioned lines for
	// column detection to be worth attempting.
	minPositionedLines = 6
)

// ColumnStrategy detects the classic two-column recipe layout: a narrow
// ingredient column beside a wider instruction column. It only applies to
// documents with positioned native text.
type ColumnStrategy struct{}

var _ Strategy = (*ColumnStrategy)(nil)

func (s *ColumnStrategy) Name() string { return "column" }

// Extract implements Strategy.
func (s *ColumnStrategy) Extract(ctx context.Context, in *Input) rezept.Outcome {
	if in.Layout == nil {
		return rezept.NotApplicable("no positioned text")
	}
	lines := in.Layout.Lines()
	if len(lines) < minPositionedLines {
		return rezept.NotApplicable("too few positioned lines")
	}

	centers := clusterCenters(lines)
	if len(centers) < 2 {
		return rezept.NotApplicable("no column structure")
	}

	left, right := splitColumns(lines, centers)
	if len(left) < minColumnLines || len(right) < minColumnLines {
		return rezept.NotApplicable("column too small")
	}

	// The ingredient column can sit on either side: the column scoring
	// more ingredient-like lines supplies the ingredients.
	ingLeft, ingRight := ingredientScore(left), ingredientScore(right)
	if ingRight > ingLeft {
		left, right = right, left
		ingLeft = ingRight
	}
	if ingLeft < minColumnScore && instructionScore(right) < minColumnScore {
		return rezept.NotApplicable("columns do not look like a recipe")
	}

	e, ok := assemble(in, titleAbove(lines, left, right), texts(left), texts(right))
	if !ok {
		return rezept.NotApplicable("column content incomplete")
	}
	return rezept.Applicable(e)
}

// clusterCenters groups line centers into column clusters using simple
// gap clustering and returns the centers of the two largest clusters,
// left to right.
func clusterCenters(lines []rezept.Line) []float64 {
	xs := make([]float64, len(lines))
	for i, l := range lines {
		xs[i] = l.CenterX()
	}
	sort.Float64s(xs)

	type cluster struct {
		sum   float64
		count int
	}
	var clusters []cluster
	for _, x := range xs {
		if len(clusters) > 0 {
			c := &clusters[len(clusters)-1]
			if x-c.sum/float64(c.count) <= clusterGap {
				c.sum += x
				c.count++
				continue
			}
		}
		clusters = append(clusters, cluster{sum: x, count: 1})
	}
	if len(clusters) < 2 {
		return nil
	}

	// two largest clusters carry the columns
	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].count > clusters[j].count })
	a := clusters[0].sum / float64(clusters[0].count)
	b := clusters[1].sum / float64(clusters[1].count)
	if a > b {
		a, b = b, a
	}
	return []float64{a, b}
}

// splitColumns assigns lines to the left or right column. Lines outside
// the membership tolerance of both centers (full-width headers, footers)
// belong to neither.
func splitColumns(lines []rezept.Line, centers []float64) (left, right []rezept.Line) {
	for _, l := range lines {
		c := l.CenterX()
		dl, dr := abs(c-centers[0]), abs(c-centers[1])
		switch {
		case dl <= clusterTolerance && dl <= dr:
			left = append(left, l)
		case dr <= clusterTolerance:
			right = append(right, l)
		}
	}
	return left, right
}

func ingredientScore(lines []rezept.Line) int {
	score := 0
	for _, l := range lines {
		if rezept.HasAmount(l.Text) || rezept.ContainsCommonIngredient(l.Text) {
			score++
		}
	}
	return score
}

func instructionScore(lines []rezept.Line) int {
	score := 0
	for _, l := range lines {
		if rezept.IsNumberedStep(l.Text) || rezept.ContainsCookingVerb(l.Text) {
			score++
		}
	}
	return score
}

// titleAbove picks a title candidate from the lines sitting above both
// columns, typically a full-width header.
func titleAbove(all, left, right []rezept.Line) string {
	topY := 1.0
	for _, l := range left {
		if l.Y0 < topY {
			topY = l.Y0
		}
	}
	for _, l := range right {
		if l.Y0 < topY {
			topY = l.Y0
		}
	}

	best := ""
	bestY := 1.0
	for _, l := range all {
		if l.Page != 1 || l.Y0 >= topY {
			continue
		}
		if CleanTitle(l.Text) == "" {
			continue
		}
		if l.Y0 < bestY {
			best, bestY = l.Text, l.Y0
		}
	}
	return best
}

func texts(lines []rezept.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
