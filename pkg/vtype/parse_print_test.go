package vtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastcore/vast/pkg/vasterr"
)

func roundTripTypes() []Type {
	return []Type{
		None(),
		Bool(),
		Integer(),
		Count(),
		Real(),
		Duration(),
		Time(),
		Str(),
		Pattern(),
		Address(),
		Subnet(),
		Port(),
		Enum("red", "green", "blue"),
		Vector(Integer()),
		Set(Str()),
		Map(Str(), Integer()),
		Record(Field{"a", Integer()}, Field{"b", Str()}),
		Alias(Integer()),
		Integer().WithName("my_int"),
		Bool().WithAttributes([]Attribute{{Key: "index", HasValue: true, Value: "hash"}, {Key: "skip"}}),
		Record(Field{"x", Integer()}, Field{"y", Record(Field{"z", Address()})}).WithName("event"),
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	for _, orig := range roundTripTypes() {
		printed := Print(orig)
		parsed, err := Parse(printed, nil)
		require.NoError(t, err, "printed form: %s", printed)
		assert.True(t, orig.Equal(parsed), "round trip mismatch: printed=%q orig=%+v got=%+v", printed, orig, parsed)
	}
}

func TestParseResolvesViaSymbolTable(t *testing.T) {
	named := Integer().WithName("port_num")
	symtab := map[string]Type{"port_num": named}
	got, err := Parse("port_num", symtab)
	require.NoError(t, err)
	assert.True(t, named.Equal(got))
}

func TestParseUnknownIdentifierFails(t *testing.T) {
	_, err := Parse("nonexistent_type", nil)
	require.Error(t, err)
	assert.True(t, vasterr.Is(err, vasterr.UnknownSymbol))
}

func TestParseSyntaxErrorOnMalformedInput(t *testing.T) {
	cases := []string{
		"vector<int",
		"record {a int}",
		"set<>",
		"{{{",
	}
	for _, c := range cases {
		_, err := Parse(c, nil)
		require.Error(t, err, "input: %q", c)
	}
}

func TestParseQuotedFieldNames(t *testing.T) {
	got, err := Parse(`record {"weird name": int}`, nil)
	require.NoError(t, err)
	require.Len(t, got.Fields(), 1)
	assert.Equal(t, "weird name", got.Fields()[0].Name)
}

func TestPrintNamedTypeUsesSignatureForm(t *testing.T) {
	named := Record(Field{"a", Bool()}).WithName("foo")
	printed := Print(named)
	assert.Contains(t, printed, "foo = record")
}
