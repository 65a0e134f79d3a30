package fitness

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Strategy is a weighted set of genes. Fitness is the dot product of gene
// values and weights; with the usual negative weights, higher is better.
type Strategy struct {
	names   []string
	genes   []Gene
	weights []float64
}

// NewStrategy builds a strategy from gene weights keyed by registered name.
func NewStrategy(weights map[string]float64) (*Strategy, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("fitness: strategy needs at least one gene")
	}

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &Strategy{
		names:   names,
		genes:   make([]Gene, len(names)),
		weights: make([]float64, len(names)),
	}
	for i, name := range names {
		g, err := Create(name)
		if err != nil {
			return nil, err
		}
		s.genes[i] = g
		s.weights[i] = weights[name]
	}
	return s, nil
}

// Names returns the gene names in evaluation order.
func (s *Strategy) Names() []string {
	return append([]string(nil), s.names...)
}

// Weights returns the weights in evaluation order.
func (s *Strategy) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// Values evaluates every gene on the grid.
func (s *Strategy) Values(g tetris.Grid) []float64 {
	values := make([]float64, len(s.genes))
	for i, gene := range s.genes {
		values[i] = gene.Evaluate(g)
	}
	return values
}

// Score returns the weighted fitness of the grid.
func (s *Strategy) Score(g tetris.Grid) float64 {
	return floats.Dot(s.Values(g), s.weights)
}

// Report is one evaluated board, laid out for CSV export.
type Report struct {
	Board     string  `csv:"board"`
	Lines     int     `csv:"lines"`
	Holes     float64 `csv:"holes"`
	MaxHeight float64 `csv:"max_height"`
	Bumpiness float64 `csv:"bumpiness"`
	Fitness   float64 `csv:"fitness"`
}

// Evaluate scores a board with the strategy. The built-in genes are always
// reported, whether or not the strategy weights them.
func (s *Strategy) Evaluate(name string, lines int, g tetris.Grid) Report {
	return Report{
		Board:     name,
		Lines:     lines,
		Holes:     Holes{}.Evaluate(g),
		MaxHeight: MaxHeight{}.Evaluate(g),
		Bumpiness: Bumpiness{}.Evaluate(g),
		Fitness:   s.Score(g),
	}
}

// Summary aggregates the fitness of several reports.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Best   float64
	Worst  float64
}

// Summarize computes fitness statistics over reports. StdDev is 0 for fewer
// than two reports.
func Summarize(reports []Report) Summary {
	if len(reports) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(reports))
	for i, r := range reports {
		xs[i] = r.Fitness
	}

	sum := Summary{
		Count: len(xs),
		Best:  floats.Max(xs),
		Worst: floats.Min(xs),
	}
	if len(xs) < 2 {
		sum.Mean = xs[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(xs, nil)
	if math.IsNaN(sum.StdDev) {
		sum.StdDev = 0
	}
	return sum
}
