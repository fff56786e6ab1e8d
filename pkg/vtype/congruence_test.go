package vtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCongruenceBasic(t *testing.T) {
	i := Integer()
	j := Integer()
	assert.True(t, i.Equal(j))

	i = i.WithName("i")
	j = j.WithName("j")
	assert.False(t, i.Equal(j))

	c := Count().WithName("c")
	assert.True(t, Congruent(i, i))
	assert.True(t, Congruent(i, j))
	assert.False(t, Congruent(i, c))
}

func TestCongruenceSets(t *testing.T) {
	i := Integer().WithName("i")
	j := Integer().WithName("j")
	c := Count().WithName("c")

	s0 := Set(i)
	s1 := Set(j)
	s2 := Set(c)
	assert.False(t, s0.Equal(s1))
	assert.False(t, s0.Equal(s2))
	assert.True(t, Congruent(s0, s1))
	assert.False(t, Congruent(s1, s2))
}

func TestCongruenceRecords(t *testing.T) {
	r0 := Record(Field{"a", Address()}, Field{"b", Bool()}, Field{"c", Count()})
	r1 := Record(Field{"x", Address()}, Field{"y", Bool()}, Field{"z", Count()})
	assert.False(t, r0.Equal(r1))
	assert.True(t, Congruent(r0, r1))
}

func TestCongruenceAliases(t *testing.T) {
	i := Integer()
	a := Alias(i).WithName("a")
	assert.False(t, a.Equal(i))
	assert.True(t, Congruent(a, i))

	r0 := Record(Field{"a", Address()}, Field{"b", Bool()}, Field{"c", Count()})
	ar := Alias(r0).WithName("r0")
	assert.False(t, ar.Equal(r0))
	assert.True(t, Congruent(ar, r0))
}

func TestCongruentReflexive(t *testing.T) {
	for _, ty := range sampleTypes() {
		assert.True(t, Congruent(ty, ty))
	}
}
