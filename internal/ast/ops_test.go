package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryOp_IsEquality(t *testing.T) {
	for _, op := range []BinaryOp{OpEq, OpNotEq, OpStrictEq, OpStrictNeq} {
		assert.True(t, op.IsEquality(), op)
	}
	for _, op := range []BinaryOp{OpLt, OpGtEq, OpAdd, OpInstanceOf, OpLogicalAnd, OpNullish} {
		assert.False(t, op.IsEquality(), op)
	}
}

func TestOps_IsWord(t *testing.T) {
	assert.True(t, OpTypeof.IsWord())
	assert.True(t, OpVoid.IsWord())
	assert.False(t, OpNot.IsWord())
	assert.True(t, OpInstanceOf.IsWord())
	assert.False(t, OpAdd.IsWord())
}

func TestOps_IsValid(t *testing.T) {
	assert.True(t, OpTypeof.IsValid())
	assert.False(t, UnaryOp("await").IsValid())
	assert.True(t, OpUShr.IsValid())
	assert.False(t, BinaryOp("<>").IsValid())
}
