// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Operator is one of the four arithmetic operations a problem can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Operators lists every operator in display order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Symbol returns the glyph shown between the operands.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Problem is a single generated expression. Answer is always in [1,10].
type Problem struct {
	A      int
	B      int
	Op     Operator
	Answer int
}

// Expression renders the problem as shown to the player, e.g. "12 ÷ 3".
func (p Problem) Expression() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Op.Symbol(), p.B)
}

// Score counts answers in the current round.
type Score struct {
	Correct int
	Total   int
}

// Accuracy returns the percentage of correct answers. A round with no answers scores 0.
func (s Score) Accuracy() float64 {
	total := s.Total
	if total < 1 {
		total = 1
	}
	return float64(s.Correct) / float64(total) * 100
}

// HistoryEntry records one completed round.
type HistoryEntry struct {
	Timestamp int64   `json:"ts"`
	Correct   int     `json:"ok"`
	Total     int     `json:"total"`
	Accuracy  float64 `json:"acc"`
}

// Time returns the entry timestamp in local time.
func (e HistoryEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Export is the document written by a history export.
type Export struct {
	ExportedAt string         `json:"exportedAt"`
	Trials     int            `json:"trials"`
	History    []HistoryEntry `json:"history"`
}

// GameConfig defines round settings.
type GameConfig struct {
	RoundDuration     time.Duration
	CountdownDuration time.Duration
	Seed              int64
	HasSeed           bool
	Debug             bool
}
