package ternary

import (
	"bytes"
	"errors"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOps(t *testing.T) {
	tests := []struct {
		op   rune
		lhs  int64
		rhs  int64
		want int64
		err  error
	}{
		{op: '+', lhs: 5, rhs: 7, want: 12},
		{op: '+', lhs: math.MaxInt64, rhs: 1, err: ErrOverflow},
		{op: '+', lhs: math.MinInt64, rhs: -1, err: ErrOverflow},
		{op: '+', lhs: math.MaxInt64, rhs: math.MinInt64, want: -1},
		{op: '-', lhs: 1, rhs: 2, want: -1},
		{op: '-', lhs: math.MinInt64, rhs: 1, err: ErrOverflow},
		{op: '-', lhs: 0, rhs: math.MinInt64, err: ErrOverflow},
		{op: '-', lhs: -1, rhs: math.MinInt64, want: math.MaxInt64},
		{op: '*', lhs: 2, rhs: 2, want: 4},
		{op: '*', lhs: 0, rhs: math.MinInt64, want: 0},
		{op: '*', lhs: -1, rhs: math.MinInt64, err: ErrOverflow},
		{op: '*', lhs: math.MinInt64, rhs: -1, err: ErrOverflow},
		{op: '*', lhs: math.MaxInt64, rhs: 2, err: ErrOverflow},
		{op: '*', lhs: math.MaxInt64, rhs: -1, want: -math.MaxInt64},
		{op: '/', lhs: 8, rhs: 2, want: 4},
		{op: '/', lhs: -3, rhs: 2, want: -1},
		{op: '/', lhs: 1, rhs: 0, err: ErrDivisionByZero},
		{op: '/', lhs: math.MinInt64, rhs: -1, err: ErrOverflow},
	}
	for _, test := range tests {
		info, ok := ops[test.op]
		if !ok {
			t.Fatalf("operator %c is not registered", test.op)
		}
		got, err := info.fn(test.lhs, test.rhs)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d %c %d: want %v but got %v", test.lhs, test.op, test.rhs, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d %c %d: %v", test.lhs, test.op, test.rhs, err)
			continue
		}
		if got != test.want {
			t.Errorf("%d %c %d: want %d but got %d", test.lhs, test.op, test.rhs, test.want, got)
		}
	}
}

func TestLookupOp(t *testing.T) {
	tests := []struct {
		op    rune
		level Level
		want  bool
	}{
		{op: '+', level: LevelExpr, want: true},
		{op: '-', level: LevelExpr, want: true},
		{op: '*', level: LevelExpr, want: false},
		{op: '*', level: LevelTerm, want: true},
		{op: '/', level: LevelTerm, want: true},
		{op: '+', level: LevelTerm, want: false},
		{op: '%', level: LevelTerm, want: false},
		{op: 0, level: LevelExpr, want: false},
	}
	for _, test := range tests {
		_, got := lookupOp(test.op, test.level)
		if got != test.want {
			t.Errorf("lookupOp(%q, %d): want %v but got %v", test.op, test.level, test.want, got)
		}
	}
}

func TestCalc(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.tern")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no test files in testdir")
	}

	for _, fn := range fns {
		t.Log(fn)
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Calc(string(b))
		if err != nil {
			b, err2 := ioutil.ReadFile(fn[:len(fn)-4] + "err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Error(err)
			}
			continue
		}
		var buf bytes.Buffer
		buf.WriteString(got)
		buf.WriteString("\n")
		b, err = ioutil.ReadFile(fn[:len(fn)-4] + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, buf.String()); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}
