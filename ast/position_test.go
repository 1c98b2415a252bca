package ast_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tocin-lang/tocin/ast"
)

func TestRangePosEnd(t *testing.T) {
	r := ast.Range{PosStart: 3, PosEnd: 9}
	assert.Equal(t, token.Pos(3), r.Pos())
	assert.Equal(t, token.Pos(9), r.End())
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "5", ast.Range{PosStart: 5, PosEnd: 5}.String())
	assert.Equal(t, "3-9", ast.Range{PosStart: 3, PosEnd: 9}.String())
}

func TestRangeBetween(t *testing.T) {
	fst := ast.Range{PosStart: 3, PosEnd: 5}
	snd := ast.Range{PosStart: 10, PosEnd: 20}
	got := ast.RangeBetween(fst, snd)
	assert.Equal(t, ast.Range{PosStart: 3, PosEnd: 20}, got)
}

func TestRangeHashIsDeterministic(t *testing.T) {
	a := ast.Range{PosStart: 1, PosEnd: 2}
	b := ast.Range{PosStart: 1, PosEnd: 2}
	c := ast.Range{PosStart: 1, PosEnd: 3}
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}
