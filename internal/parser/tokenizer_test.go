package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/rolodex/internal/domain"
)

func TestTokenize_SplitsPrefixesAndPreamble(t *testing.T) {
	mm := Tokenize("n/Alice p/12345678", PrefixName, PrefixPhone)

	assert.Equal(t, "", mm.Preamble())
	assert.Equal(t, []string{"Alice"}, mm.AllValues(PrefixName))
	assert.Equal(t, []string{"12345678"}, mm.AllValues(PrefixPhone))
}

func TestTokenize_RepeatedPrefixKeepsAllValuesInOrder(t *testing.T) {
	mm := Tokenize("n/Alice t/friends t/colleagues t/friends", PrefixName, PrefixTag)

	assert.Equal(t, []string{"friends", "colleagues", "friends"}, mm.AllValues(PrefixTag))
	v, ok := mm.Value(PrefixTag)
	require.True(t, ok)
	assert.Equal(t, "friends", v)
}

func TestTokenize_Preamble(t *testing.T) {
	mm := Tokenize("  some text   n/Alice", PrefixName)
	assert.Equal(t, "some text", mm.Preamble())

	mm = Tokenize("   ", PrefixName)
	assert.Equal(t, "", mm.Preamble())
	assert.False(t, mm.Has(PrefixName))
}

func TestTokenize_PrefixOnlyAtWordStart(t *testing.T) {
	mm := Tokenize("a/Blk 30/12 Geylang p/123", PrefixAddress, PrefixPhone)

	assert.Equal(t, []string{"Blk 30/12 Geylang"}, mm.AllValues(PrefixAddress))
	assert.Equal(t, []string{"123"}, mm.AllValues(PrefixPhone))
}

func TestTokenize_LongerPrefixWinsAtSameOffset(t *testing.T) {
	short, long := Prefix("x/"), Prefix("x/y/")
	mm := Tokenize("x/y/one x/two", short, long)

	assert.Equal(t, []string{"one"}, mm.AllValues(long))
	assert.Equal(t, []string{"two"}, mm.AllValues(short))
}

func TestTokenize_SimilarPrefixesStaySeparate(t *testing.T) {
	mm := Tokenize("sk/trainer s/$10/hr", PrefixSkill, PrefixSalary)

	assert.Equal(t, []string{"trainer"}, mm.AllValues(PrefixSkill))
	assert.Equal(t, []string{"$10/hr"}, mm.AllValues(PrefixSalary))
}

func TestTokenize_EmptyValue(t *testing.T) {
	mm := Tokenize("n/Alice t/", PrefixName, PrefixTag)

	require.True(t, mm.Has(PrefixTag))
	assert.Equal(t, []string{""}, mm.AllValues(PrefixTag))
}

func TestArgumentMultimap_AllValuesReturnsCopy(t *testing.T) {
	mm := Tokenize("t/a t/b", PrefixTag)
	vs := mm.AllValues(PrefixTag)
	vs[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, mm.AllValues(PrefixTag))
	assert.Empty(t, mm.AllValues(PrefixName))
}

func TestVerifyNoDuplicatePrefixesFor(t *testing.T) {
	mm := Tokenize("n/Alice n/Bob p/1 p/2 t/x t/y", PrefixName, PrefixPhone, PrefixTag)

	err := mm.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone)
	require.Error(t, err)
	assert.Equal(t, MessageDuplicateFields+"n/ p/", err.Error())

	assert.NoError(t, mm.VerifyNoDuplicatePrefixesFor(PrefixEmail))
}

func TestCheckUnknownPrefix(t *testing.T) {
	got := CheckUnknownPrefix("n/Alice x/1 p/2 zz/3 x/4 a/Blk 30/12", PrefixName, PrefixPhone, PrefixAddress)
	assert.Equal(t, []string{"x/", "zz/"}, got)

	assert.Empty(t, CheckUnknownPrefix("n/Alice p/2", PrefixName, PrefixPhone))
}

func TestVerifyNoUnknownPrefix(t *testing.T) {
	err := VerifyNoUnknownPrefix("n/Alice x/1", NoteUsage, CommandNote, commandHeader(CommandNote), PrefixName)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownPrefix))
	assert.Contains(t, err.Error(), "x/")

	assert.NoError(t, VerifyNoUnknownPrefix("n/Alice", NoteUsage, CommandNote, commandHeader(CommandNote), PrefixName))
}

func TestCheckUndetectedPrefix(t *testing.T) {
	mm := Tokenize("n/Alice e/a@b.co", PrefixName, PrefixPhone, PrefixEmail)

	got := CheckUndetectedPrefix(mm, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress)
	assert.Equal(t, []Prefix{PrefixPhone, PrefixAddress}, got)
}
