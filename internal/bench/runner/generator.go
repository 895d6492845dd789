package runner

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/DjordjeVuckovic/rankcorr/internal/ranklist"
	"github.com/google/uuid"
)

// Generator builds random ranked lists sorted by predicted score. The tie
// density controls how few distinct labels a list draws from: 0 gives every
// entry its own grade range, values close to 1 collapse the list onto a
// single grade.
type Generator struct {
	rnd        *rand.Rand
	tieDensity float64
}

func NewGenerator(seed uint64, tieDensity float64) *Generator {
	return &Generator{
		rnd:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tieDensity: tieDensity,
	}
}

func (g *Generator) List(id string, n int) *ranklist.List {
	grades := max(1, int(math.Round(float64(n)*(1-g.tieDensity))))
	entries := make([]ranklist.Entry, n)
	for i := range entries {
		entries[i] = ranklist.Entry{
			DocID: uuid.New(),
			Label: float64(g.rnd.IntN(grades)),
			Score: g.rnd.Float64(),
		}
	}
	l := ranklist.New(id, entries)
	l.SortByScore()
	return l
}

func (g *Generator) Lists(prefix string, n, count int) []*ranklist.List {
	lists := make([]*ranklist.List, count)
	for i := range lists {
		lists[i] = g.List(fmt.Sprintf("%s-%d", prefix, i), n)
	}
	return lists
}
