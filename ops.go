package ternary

import (
	"math"
)

type Level int

const (
	LevelExpr Level = iota
	LevelTerm
)

type Fn func(lhs, rhs int64) (int64, error)

type OpInfo struct {
	level Level
	fn    Fn
}

var ops map[rune]OpInfo

func makeOp(level Level, fn Fn) OpInfo {
	return OpInfo{level: level, fn: fn}
}

func init() {
	ops = make(map[rune]OpInfo)
	ops['+'] = makeOp(LevelExpr, doPlus)
	ops['-'] = makeOp(LevelExpr, doMinus)
	ops['*'] = makeOp(LevelTerm, doMul)
	ops['/'] = makeOp(LevelTerm, doDiv)
}

// lookupOp reports the operator registered for r at the given precedence level.
func lookupOp(r rune, level Level) (Fn, bool) {
	info, ok := ops[r]
	if !ok || info.level != level {
		return nil, false
	}
	return info.fn, true
}

// The errors below carry only the kind; the parser fills in the position.

func doPlus(lhs, rhs int64) (int64, error) {
	if (rhs > 0 && lhs > math.MaxInt64-rhs) || (rhs < 0 && lhs < math.MinInt64-rhs) {
		return 0, ErrOverflow
	}
	return lhs + rhs, nil
}

func doMinus(lhs, rhs int64) (int64, error) {
	if (rhs < 0 && lhs > math.MaxInt64+rhs) || (rhs > 0 && lhs < math.MinInt64+rhs) {
		return 0, ErrOverflow
	}
	return lhs - rhs, nil
}

func doMul(lhs, rhs int64) (int64, error) {
	if lhs == 0 || rhs == 0 {
		return 0, nil
	}
	if (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
		return 0, ErrOverflow
	}
	ret := lhs * rhs
	if ret/rhs != lhs {
		return 0, ErrOverflow
	}
	return ret, nil
}

// doDiv truncates toward zero.
func doDiv(lhs, rhs int64) (int64, error) {
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	if lhs == math.MinInt64 && rhs == -1 {
		return 0, ErrOverflow
	}
	return lhs / rhs, nil
}
