// Package cigar encodes and decodes the run-length edit scripts the aligner returns.
package cigar

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a single CIGAR operator.
type Op byte

const (
	// Match consumes one symbol from both A and B which compare equal.
	Match Op = '='
	// Sub (substitution) consumes one symbol from both A and B which differ.
	Sub Op = 'X'
	// Ins (insertion into A) consumes one symbol from B only.
	Ins Op = 'I'
	// Del (deletion from A) consumes one symbol from A only.
	Del Op = 'D'
)

func (o Op) String() string {
	switch o {
	case Match:
		return "="
	case Sub:
		return "X"
	case Ins:
		return "I"
	case Del:
		return "D"
	default:
		return fmt.Sprintf("Op(%q)", byte(o))
	}
}

// Run is a single run-length-encoded CIGAR element, e.g. "12=" is Run{Op: Match, Len: 12}.
type Run struct {
	Op  Op
	Len int
}

// Script is a sequence of runs in application order, consecutive runs always having distinct Op
// (a well-formed CIGAR never has two adjacent runs of the same operator).
type Script []Run

// String formats the script in CIGAR text form, e.g. "3=1X2=1I4=".
func (s Script) String() string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(strconv.Itoa(r.Len))
		b.WriteByte(byte(r.Op))
	}
	return b.String()
}

// Cost returns the script's total edit cost: substitutions, insertions, and deletions each cost
// 1 per symbol; matches cost 0.
func (s Script) Cost() int {
	cost := 0
	for _, r := range s {
		if r.Op != Match {
			cost += r.Len
		}
	}
	return cost
}

// builder accumulates single-edge operators and run-length-encodes them as they're appended,
// merging a newly appended op into the last run when they match.
type builder struct {
	runs Script
}

// append adds n occurrences of op, merging into the previous run if possible.
func (b *builder) append(op Op, n int) {
	if n <= 0 {
		return
	}
	if len(b.runs) > 0 && b.runs[len(b.runs)-1].Op == op {
		b.runs[len(b.runs)-1].Len += n
		return
	}
	b.runs = append(b.runs, Run{Op: op, Len: n})
}

// Builder constructs a Script by appending one edge's operator at a time, in application order.
// Using Builder instead of assembling a Script directly keeps run-length merging in one place.
type Builder struct {
	b builder
}

// Append records n consecutive occurrences of op.
func (bd *Builder) Append(op Op, n int) {
	bd.b.append(op, n)
}

// Build returns the accumulated script.
func (bd *Builder) Build() Script {
	return bd.b.runs
}

// Reverse returns a new script with the run order reversed, leaving each run unchanged; applied
// to a CIGAR built by walking the traceback from target to source, it yields one in
// source-to-target order.
func Reverse(s Script) Script {
	out := make(Script, len(s))
	for i, r := range s {
		out[len(s)-1-i] = r
	}
	return out
}

// Swap exchanges Ins and Del, leaving Match and Sub untouched. align(A,B) and align(B,A) produce
// CIGARs related by exactly this transform.
func Swap(s Script) Script {
	out := make(Script, len(s))
	for i, r := range s {
		switch r.Op {
		case Ins:
			out[i] = Run{Op: Del, Len: r.Len}
		case Del:
			out[i] = Run{Op: Ins, Len: r.Len}
		default:
			out[i] = r
		}
	}
	return out
}
