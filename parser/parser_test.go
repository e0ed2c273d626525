package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PHLens/SeaOfNode/parser"
)

func parseAndPrint(t *testing.T, src string) string {
	t.Helper()
	g, err := parser.Parse(src)
	require.NoError(t, err)

	return g.Print(g.Stop())
}

func TestEndToEnd_ConstantFoldedArithmetic(t *testing.T) {
	require.Equal(t, "return 2;", parseAndPrint(t, "return 1+2*3+-5;"))
}

func TestEndToEnd_BlockScopeShadowing(t *testing.T) {
	src := "int a=1; int b=2; int c=0; { int b=3; c=a+b; } return c;"
	require.Equal(t, "return 4;", parseAndPrint(t, src))
}

func TestEndToEnd_UnconstrainedArgFoldsSurroundingConstants(t *testing.T) {
	require.Equal(t, "return (arg+3);", parseAndPrint(t, "return 1+arg+2;"))
}

func TestEndToEnd_IfElseMergesIntoPhi(t *testing.T) {
	src := "int a=1; if (arg==1) a=arg+2; else a=arg-3; return a;"
	out := parseAndPrint(t, src)
	require.Regexp(t, `^return Phi\(Region\d+,\(arg\+2\),\(arg-3\)\);$`, out)
}

func TestEndToEnd_BothArmsReturnNoMerge(t *testing.T) {
	require.Equal(t, "Stop[ return 3; return 4; ]", parseAndPrint(t, "if(arg==1) return 3; else return 4;"))
}

func TestEndToEnd_PhiHoistThroughAdd(t *testing.T) {
	src := "int a=arg+1; int b=0; if(arg==1) b=a; else b=a+1; return a+b;"
	out := parseAndPrint(t, src)
	require.Regexp(t, `^return \(\(arg\*2\)\+Phi\(Region\d+,2,3\)\);$`, out)
}

func TestError_LeadingZeroLiteral(t *testing.T) {
	_, err := parser.Parse("return 0123;")
	require.ErrorContains(t, err, "Syntax error: integer values cannot start with '0'")
}

func TestError_RedefinitionInSameFrame(t *testing.T) {
	_, err := parser.Parse("int a=1; int a=2; return a;")
	require.ErrorContains(t, err, "Redefining name 'a'")
}

func TestError_AsymmetricIfArmDeclaration(t *testing.T) {
	_, err := parser.Parse("if(arg==1) int b=2; return b;")
	require.ErrorContains(t, err, "Cannot define a new name on one arm of an if")
}

func TestError_BothArmsDeclareDifferentNames(t *testing.T) {
	_, err := parser.Parse("if (arg==1) int b=2; else int c=3; return arg;")
	require.ErrorContains(t, err, "Cannot define a new name on one arm of an if")
}

func TestError_KeywordUsedAsDeclaredName(t *testing.T) {
	_, err := parser.Parse("int true=0;")
	require.ErrorContains(t, err, "Expected an identifier, but found 'true'")
}

func TestError_UndefinedNameOnAssignment(t *testing.T) {
	_, err := parser.Parse("x=1;")
	require.ErrorContains(t, err, "Undefined name 'x'")
}

func TestError_UndefinedNameOnRead(t *testing.T) {
	_, err := parser.Parse("return x;")
	require.ErrorContains(t, err, "Undefined name 'x'")
}

func TestTrueFalseLiteralsFoldToIntegers(t *testing.T) {
	require.Equal(t, "return 1;", parseAndPrint(t, "return true;"))
	require.Equal(t, "return 0;", parseAndPrint(t, "return false;"))
}

func TestGreaterThanDesugarsToSwappedLessThan(t *testing.T) {
	require.Equal(t, "return 1;", parseAndPrint(t, "return 2>1;"))
	require.Equal(t, "return 1;", parseAndPrint(t, "return 2>=2;"))
}

func TestNotEqualDesugarsToNegatedEquals(t *testing.T) {
	require.Equal(t, "return 1;", parseAndPrint(t, "return 1!=2;"))
}
