/*
File    : monkeymix/evaluator/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"testing"

	"github.com/akashmaji946/monkeymix/lexer"
	"github.com/akashmaji946/monkeymix/object"
	"github.com/akashmaji946/monkeymix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.NewParser(lexer.NewLexer(input))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors: %v", p.Errors())
	return New().Run(program, p.Errors())
}

func TestEvalIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"-5", -5},
		{"5 + 5 + 5 + 5 - 10", 10},
		{"2 * 2 * 2 * 2 * 2", 32},
		{"50 / 2 * 2 + 10", 60},
		{"(5 + 10 * 2 + 15 / 3) * 2 + -10", 50},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		intObj, ok := result.(*object.Integer)
		require.True(t, ok, "expected Integer, got %T (%+v)", result, result)
		assert.Equal(t, tt.expected, intObj.Value, tt.input)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1 < 2", true},
		{"1 > 2", false},
		{"1 == 1", true},
		{"1 != 1", false},
		{"(1 < 2) == true", true},
		{"(1 < 2) == false", false},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		boolObj, ok := result.(*object.Boolean)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.expected, boolObj.Value, tt.input)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!5", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		assert.Equal(t, tt.expected, result.(*object.Boolean).Value, tt.input)
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10 }", int64(10)},
		{"if (false) { 10 }", nil},
		{"if (1) { 10 }", int64(10)},
		{"if (1 < 2) { 10 }", int64(10)},
		{"if (1 > 2) { 10 } else { 20 }", int64(20)},
		{"if (1 < 2) { 10 } else { 20 }", int64(10)},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		if tt.expected == nil {
			assert.Same(t, NULL, result, tt.input)
			continue
		}
		assert.Equal(t, tt.expected.(int64), result.(*object.Integer).Value, tt.input)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 9;", 10},
		{"return 2 * 5; 9;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (10 > 1) { if (10 > 1) { return 10; } return 1; }", 10},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		assert.Equal(t, tt.expected, result.(*object.Integer).Value, tt.input)
	}
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"-true", "unknown operator: -BOOLEAN"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"5; true + false; 5", "unknown operator: BOOLEAN + BOOLEAN"},
		{"if (10 > 1) { true + false; }", "unknown operator: BOOLEAN + BOOLEAN"},
		{"foobar;", "identifier not found: foobar"},
		{`"hello" - "world"`, "unknown operator: STRING - STRING"},
		{"5 / 0", "division by zero"},
		{`{"name": "monkey"}[fn(x) { x }];`, "unusable as hash key: FUNCTION"},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		errObj, ok := result.(*object.Error)
		require.True(t, ok, "expected Error, got %T for %q", result, tt.input)
		assert.Equal(t, tt.message, errObj.Message, tt.input)
	}
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"let a = 5; a;", 5},
		{"let a = 5 * 5; a;", 25},
		{"let a = 5; let b = a; b;", 5},
		{"let a = 5; let b = a; let c = a + b + 5; c;", 15},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		assert.Equal(t, tt.expected, result.(*object.Integer).Value, tt.input)
	}
}

func TestClosures(t *testing.T) {
	input := `
	let foo = fn(x) { fn(y) { x + y; }; };
	let addtwo = foo(2);
	addtwo(10);
	`
	result := testEval(t, input)
	assert.Equal(t, int64(12), result.(*object.Integer).Value)
}

func TestFunctionArityMismatch(t *testing.T) {
	result := testEval(t, "let f = fn(x, y) { x + y; }; f(1);")
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "wrong number of arguments: expected 2, got 1", errObj.Message)
}

func TestStringConcatenation(t *testing.T) {
	result := testEval(t, `"hello" + " " + "world"`)
	str, ok := result.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "hello world", str.Value)
}

func TestArrayLiteralsAndIndexing(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"[1,2,3][-1]", int64(3)},
		{"[1,2,3][3]", nil},
		{"[1,2,3][0]", int64(1)},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		if tt.expected == nil {
			assert.Same(t, NULL, result, tt.input)
			continue
		}
		assert.Equal(t, tt.expected.(int64), result.(*object.Integer).Value, tt.input)
	}
}

func TestArrayBuiltins(t *testing.T) {
	result := testEval(t, "let a = [1,2,3,4]; rest(a)")
	arr, ok := result.(*object.Array)
	require.True(t, ok)
	assert.Equal(t, "[2, 3, 4]", arr.Inspect())

	result = testEval(t, "let a = [1,2,3,4]; push(rest(a), 5)")
	arr, ok = result.(*object.Array)
	require.True(t, ok)
	assert.Equal(t, "[2, 3, 4, 5]", arr.Inspect())
}

func TestHashLiterals(t *testing.T) {
	input := `let h = {"a": 1, 2: "b", true: 3}; h["a"]`
	result := testEval(t, input)
	assert.Equal(t, int64(1), result.(*object.Integer).Value)
}

func TestNonIntegerEqualityIsIdentity(t *testing.T) {
	result := testEval(t, `let a = "x"; let b = "x"; a == b`)
	boolObj := result.(*object.Boolean)
	assert.False(t, boolObj.Value, "distinct String instances are not identical")

	result = testEval(t, "true == true")
	assert.True(t, result.(*object.Boolean).Value)
}
