package data

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCanonicalizesSortedAndDeduped(t *testing.T) {
	s := Set(Integer(3), Integer(1), Integer(2), Integer(1))
	assert.Equal(t, []Data{Integer(1), Integer(2), Integer(3)}, s.Set())
}

func TestMapCanonicalizesSortedByKeyLastWriteWins(t *testing.T) {
	m := Map(
		MapEntry{Key: Str("b"), Value: Integer(1)},
		MapEntry{Key: Str("a"), Value: Integer(2)},
		MapEntry{Key: Str("a"), Value: Integer(3)},
	)
	want := []MapEntry{
		{Key: Str("a"), Value: Integer(3)},
		{Key: Str("b"), Value: Integer(1)},
	}
	assert.Equal(t, want, m.Map())
}

func TestEqualByVariant(t *testing.T) {
	assert.True(t, None().Equal(None()))
	assert.False(t, None().Equal(Bool(false)))
	assert.True(t, Integer(5).Equal(Integer(5)))
	assert.False(t, Integer(5).Equal(Count(5)))
	assert.True(t, Vector(Integer(1), Integer(2)).Equal(Vector(Integer(1), Integer(2))))
	assert.False(t, Vector(Integer(1)).Equal(Vector(Integer(1), Integer(2))))

	addr := netip.MustParseAddr("10.0.0.1")
	assert.True(t, Address(addr).Equal(Address(addr)))

	now := time.Now()
	assert.True(t, Time(now).Equal(Time(now)))
}

func TestLessOrdersAcrossAndWithinKinds(t *testing.T) {
	assert.True(t, Bool(false).Less(Integer(0)), "kind tag order is total")
	assert.True(t, Integer(1).Less(Integer(2)))
	assert.False(t, Integer(2).Less(Integer(1)))
	assert.True(t, Str("a").Less(Str("b")))
	assert.True(t, PortVal(22, "tcp").Less(PortVal(22, "udp")))
	assert.True(t, PortVal(22, "tcp").Less(PortVal(80, "tcp")))
}

func TestDataViewIterateOrder(t *testing.T) {
	v := Vector(Integer(1), Integer(2), Integer(3))
	view := MakeView(&v)
	var got []int64
	view.Iterate(func(ev DataView) bool {
		got = append(got, ev.Get().Integer())
		return true
	})
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestDataViewIterateStopsEarly(t *testing.T) {
	v := Vector(Integer(1), Integer(2), Integer(3))
	view := MakeView(&v)
	var got []int64
	view.Iterate(func(ev DataView) bool {
		got = append(got, ev.Get().Integer())
		return len(got) < 2
	})
	assert.Equal(t, []int64{1, 2}, got)
}

func TestDataViewIterateMapKeySorted(t *testing.T) {
	m := Map(
		MapEntry{Key: Str("z"), Value: Integer(1)},
		MapEntry{Key: Str("a"), Value: Integer(2)},
	)
	view := MakeView(&m)
	var keys []string
	view.IterateMap(func(k, _ DataView) bool {
		keys = append(keys, k.Get().Str())
		return true
	})
	assert.Equal(t, []string{"a", "z"}, keys)
}

func TestDataViewIterateNoopForScalar(t *testing.T) {
	v := Integer(5)
	view := MakeView(&v)
	called := false
	view.Iterate(func(DataView) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestMakeViewGetRoundTrips(t *testing.T) {
	d := Record(Integer(1), Str("x"))
	view := MakeView(&d)
	require.True(t, view.Get().Equal(d))
	assert.False(t, view.IsNone())

	n := None()
	assert.True(t, MakeView(&n).IsNone())
}
