package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/lexer"
)

func TestMatch_SkipsWhitespaceEvenOnFailure(t *testing.T) {
	l := lexer.New("   +b")
	require.False(t, l.Match("-"))
	require.True(t, l.PeekEquals('+'))
}

func TestMatchExact_RejectsPrefixOfLongerIdentifier(t *testing.T) {
	l := lexer.New("ifall")
	require.False(t, l.MatchExact("if"))

	name, ok := l.MatchIdent()
	require.True(t, ok)
	require.Equal(t, "ifall", name)
}

func TestMatchExact_AcceptsKeywordAtWordBoundary(t *testing.T) {
	l := lexer.New("if (")
	require.True(t, l.MatchExact("if"))
	require.True(t, l.PeekEquals('('))
}

func TestMatchIdent_AllowsUnderscoreAndDigits(t *testing.T) {
	l := lexer.New("_foo_2 ")
	name, ok := l.MatchIdent()
	require.True(t, ok)
	require.Equal(t, "_foo_2", name)
}

func TestMatchIdent_FailsOnLeadingDigit(t *testing.T) {
	l := lexer.New("2foo")
	_, ok := l.MatchIdent()
	require.False(t, ok)
}

func TestParseNumber_ReadsMultiDigitValue(t *testing.T) {
	l := lexer.New("1234;")
	v, err := l.ParseNumber()
	require.NoError(t, err)
	require.Equal(t, int64(1234), v)
	require.True(t, l.PeekEquals(';'))
}

func TestParseNumber_RejectsLeadingZero(t *testing.T) {
	l := lexer.New("0123")
	_, err := l.ParseNumber()
	require.ErrorIs(t, err, lexer.ErrLeadingZero)
}

func TestParseNumber_AllowsBareZero(t *testing.T) {
	l := lexer.New("0;")
	v, err := l.ParseNumber()
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}

func TestIsNumberNext_DoesNotConsume(t *testing.T) {
	l := lexer.New("  42")
	require.True(t, l.IsNumberNext())
	v, err := l.ParseNumber()
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
}

func TestNextTokenText_ForDiagnostics(t *testing.T) {
	require.Equal(t, "foo", lexer.New("foo + 1").NextTokenText())
	require.Equal(t, "+", lexer.New("+ 1").NextTokenText())
	require.Equal(t, "", lexer.New("   ").NextTokenText())
}

func TestIsEOF(t *testing.T) {
	l := lexer.New("a")
	require.False(t, l.IsEOF())
	_, _ = l.MatchIdent()
	require.True(t, l.IsEOF())
}
