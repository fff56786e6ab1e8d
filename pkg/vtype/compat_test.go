package vtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleAddressInSubnet(t *testing.T) {
	assert.True(t, Compatible(Address(), OpIn, Subnet()))
	assert.True(t, Compatible(Subnet(), OpIn, Subnet()))
}

func TestCompatibleIntegerNotInSubnet(t *testing.T) {
	assert.False(t, Compatible(Integer(), OpIn, Subnet()))
}

func TestCompatibleOrdering(t *testing.T) {
	assert.True(t, Compatible(Integer(), OpLess, Integer()))
	assert.False(t, Compatible(Bool(), OpLess, Bool()))
	assert.False(t, Compatible(Integer(), OpLess, Real()))
}

func TestCompatibleContainerMembership(t *testing.T) {
	assert.True(t, Compatible(Integer(), OpIn, Vector(Integer())))
	assert.False(t, Compatible(Bool(), OpIn, Vector(Integer())))
	assert.True(t, Compatible(Str(), OpIn, Map(Str(), Integer())))
}

func TestCompatibleMatch(t *testing.T) {
	assert.True(t, Compatible(Str(), OpMatch, Pattern()))
	assert.False(t, Compatible(Integer(), OpMatch, Pattern()))
}
