// Package generator builds arithmetic problems whose answer is an integer in [1,10].
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tapquiz/internal/model"
)

const (
	minAnswer = 1
	maxAnswer = 10
)

// Rand is the random source used for every draw. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator produces randomized arithmetic problems.
type Generator struct {
	rnd Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator whose sequence is reproducible for a given seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithRand returns a Generator drawing from r.
func NewWithRand(r Rand) *Generator {
	return &Generator{rnd: r}
}

// Generate picks an operator uniformly and builds a problem for it.
func (g *Generator) Generate() model.Problem {
	op := model.Operators[g.rnd.Intn(len(model.Operators))]
	return g.GenerateOp(op)
}

// GenerateOp builds a problem for the given operator.
func (g *Generator) GenerateOp(op model.Operator) model.Problem {
	switch op {
	case model.OpSub:
		return g.subtraction()
	case model.OpMul:
		return g.multiplication()
	case model.OpDiv:
		return g.division()
	default:
		return g.addition()
	}
}

func (g *Generator) addition() model.Problem {
	a := g.intRange(1, maxAnswer-1)
	b := g.intRange(1, maxAnswer-a)
	return model.Problem{A: a, B: b, Op: model.OpAdd, Answer: a + b}
}

// subtraction draws the difference first so the minuend never exceeds 10.
func (g *Generator) subtraction() model.Problem {
	r := g.intRange(minAnswer, maxAnswer-1)
	b := g.intRange(1, maxAnswer-r)
	return model.Problem{A: r + b, B: b, Op: model.OpSub, Answer: r}
}

func (g *Generator) multiplication() model.Problem {
	r := g.intRange(minAnswer, maxAnswer)
	pairs := FactorPairs(r)
	pick := pairs[g.rnd.Intn(len(pairs))]
	return model.Problem{A: pick[0], B: pick[1], Op: model.OpMul, Answer: pick[0] * pick[1]}
}

// division bounds the quotient and divisor only; the dividend may reach 100.
func (g *Generator) division() model.Problem {
	r := g.intRange(minAnswer, maxAnswer)
	b := g.intRange(1, maxAnswer)
	return model.Problem{A: r * b, B: b, Op: model.OpDiv, Answer: r}
}

func (g *Generator) intRange(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

// FactorPairs lists the ordered pairs (i, n/i) with both factors in [1,10].
func FactorPairs(n int) [][2]int {
	var pairs [][2]int
	for i := 1; i <= maxAnswer; i++ {
		if n%i != 0 {
			continue
		}
		if n/i > maxAnswer {
			continue
		}
		pairs = append(pairs, [2]int{i, n / i})
	}
	return pairs
}
