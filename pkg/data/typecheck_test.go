package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vastcore/vast/pkg/vtype"
)

func TestTypeCheckNoneAlwaysPasses(t *testing.T) {
	assert.True(t, TypeCheck(vtype.Integer(), None()))
	assert.True(t, TypeCheck(vtype.Record(vtype.Field{Name: "a", Type: vtype.Bool()}), None()))
}

func TestTypeCheckScalarMismatch(t *testing.T) {
	assert.True(t, TypeCheck(vtype.Integer(), Integer(5)))
	assert.False(t, TypeCheck(vtype.Integer(), Count(5)))
	assert.False(t, TypeCheck(vtype.Bool(), Integer(5)))
}

func TestTypeCheckContainerElementType(t *testing.T) {
	vt := vtype.Vector(vtype.Integer())
	assert.True(t, TypeCheck(vt, Vector(Integer(1), Integer(2))))
	assert.False(t, TypeCheck(vt, Vector(Integer(1), Str("x"))))
}

func TestTypeCheckEmptyContainerAcceptsAnyElement(t *testing.T) {
	vt := vtype.Vector(vtype.Type{})
	assert.True(t, TypeCheck(vt, Vector(Integer(1))))
	assert.True(t, TypeCheck(vt, Vector(Str("x"))))
}

func TestTypeCheckEnumRange(t *testing.T) {
	et := vtype.Enum("a", "b", "c")
	assert.True(t, TypeCheck(et, Enum(2)))
	assert.False(t, TypeCheck(et, Enum(3)))
	assert.False(t, TypeCheck(et, Enum(-1)))
}

func TestTypeCheckRecordArityAndFields(t *testing.T) {
	rt := vtype.Record(
		vtype.Field{Name: "a", Type: vtype.Integer()},
		vtype.Field{Name: "b", Type: vtype.Str()},
	)
	assert.True(t, TypeCheck(rt, Record(Integer(1), Str("x"))))
	assert.False(t, TypeCheck(rt, Record(Integer(1))))
	assert.False(t, TypeCheck(rt, Record(Integer(1), Integer(2))))
}

func TestTypeCheckSeesThroughAlias(t *testing.T) {
	at := vtype.Alias(vtype.Integer()).WithName("myint")
	assert.True(t, TypeCheck(at, Integer(5)))
	assert.False(t, TypeCheck(at, Str("x")))
}

func TestTypeCheckMapKeyAndValue(t *testing.T) {
	mt := vtype.Map(vtype.Str(), vtype.Integer())
	ok := Map(MapEntry{Key: Str("a"), Value: Integer(1)})
	bad := Map(MapEntry{Key: Str("a"), Value: Str("x")})
	assert.True(t, TypeCheck(mt, ok))
	assert.False(t, TypeCheck(mt, bad))
}
