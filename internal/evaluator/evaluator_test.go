package evaluator

import (
	"strings"
	"testing"

	"github.com/arshidkv12/monkey/internal/lexer"
	"github.com/arshidkv12/monkey/internal/parser"
	"github.com/arshidkv12/monkey/internal/pipeline"
)

func testEval(t *testing.T, input string) Object {
	t.Helper()

	ctx := pipeline.NewPipelineContext(input)
	l := lexer.New(input)
	stream := lexer.NewTokenStream(l)
	p := parser.New(stream, ctx)
	program := p.ParseProgram()

	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing %q failed:\n%s", input, strings.Join(msgs, "\n"))
	}

	return EvalProgram(program)
}

func testIntegerObject(t *testing.T, obj Object, expected int64) {
	t.Helper()

	result, ok := obj.(*Integer)
	if !ok {
		t.Fatalf("object is not Integer. got=%T (%+v)", obj, obj)
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%d, want=%d", result.Value, expected)
	}
}

func testBooleanObject(t *testing.T, obj Object, expected bool) {
	t.Helper()

	result, ok := obj.(*Boolean)
	if !ok {
		t.Fatalf("object is not Boolean. got=%T (%+v)", obj, obj)
	}
	if result.Value != expected {
		t.Errorf("object has wrong value. got=%t, want=%t", result.Value, expected)
	}
}

func testNullObject(t *testing.T, obj Object) {
	t.Helper()

	if obj != NULL {
		t.Fatalf("object is not NULL. got=%T (%+v)", obj, obj)
	}
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5;", 5},
		{"10;", 10},
		{"-5;", -5},
		{"-10;", -10},
		{"-(-5);", 5},
		{"-(1 - 2);", 1},
		{"5 + 5;", 10},
		{"5 - 5;", 0},
		{"5 * 5;", 25},
		{"5 / 5;", 1},
		{"7 / 2;", 3},
		{"-7 / 2;", -3},
		{"(1 + 2) + 3;", 6},
		{"(1 + 2) - 3;", 0},
		{"(1 + 2) * 3;", 9},
		{"(1 + 2) / 3;", 1},
		{"9; 2 * 5;", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testIntegerObject(t, testEval(t, tt.input), tt.expected)
		})
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true;", true},
		{"false;", false},
		{"5 > 1;", true},
		{"5 < 1;", false},
		{"5 == 1;", false},
		{"5 != 1;", true},
		{"5 == 5;", true},
		{"true == true;", true},
		{"true != true;", false},
		{"false == false;", true},
		{"(1 + 2) < 3;", false},
		{"(1 + 2) > 3;", false},
		{"(1 > 2) == false;", true},
		{"(1 > 2) != false;", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testBooleanObject(t, testEval(t, tt.input), tt.expected)
		})
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true;", false},
		{"!false;", true},
		{"!!true;", true},
		{"!!false;", false},
		{"!(1 > 2);", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testBooleanObject(t, testEval(t, tt.input), tt.expected)
		})
	}
}

func TestIfElseExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"if (true) { 10; };", int64(10)},
		{"if (false) { 10; };", nil},
		{"if (false) { 10; } else { 11; };", int64(11)},
		{"if (1 > 2) { 10; } else { 11; };", int64(11)},
		{"if (1 < 2) { 10; } else { 11; };", int64(10)},
		// The condition must be exactly true; anything else selects the
		// alternative. No truthiness.
		{"if (1) { 10; } else { 11; };", int64(11)},
		{"if (1) { 10; };", nil},
		{"if (true) { };", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			evaluated := testEval(t, tt.input)
			if expected, ok := tt.expected.(int64); ok {
				testIntegerObject(t, evaluated, expected)
			} else {
				testNullObject(t, evaluated)
			}
		})
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"return 10;", 10},
		{"return 10; 11;", 10},
		{"9; return 2 * 5; 9;", 10},
		{"if (true) { return 10; }; 11;", 10},
		{`
			if (10 > 1) {
			  if (10 > 1) {
			    return 10;
			  };

			  return 1;
			};
		`, 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testIntegerObject(t, testEval(t, tt.input), tt.expected)
		})
	}
}

// The return wrapper must never escape program-level evaluation.
func TestReturnValueIsAlwaysUnwrapped(t *testing.T) {
	inputs := []string{
		"return 10;",
		"return true;",
		"if (true) { return 10; };",
		"if (10 > 1) { if (10 > 1) { return 10; }; return 1; };",
	}

	for _, input := range inputs {
		if got := testEval(t, input); got.Type() == RETURN_VALUE_OBJ {
			t.Errorf("EvalProgram(%q) leaked a return wrapper: %+v", input, got)
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	testNullObject(t, testEval(t, ""))
}

func TestErrorHandling(t *testing.T) {
	tests := []struct {
		input           string
		expectedMessage string
	}{
		{"!5;", "operator ! not supported for INTEGER"},
		{"-true;", "unknown operator: -BOOLEAN"},
		{"5 + true;", "type mismatch: INTEGER + BOOLEAN"},
		{"5 == true;", "type mismatch: INTEGER == BOOLEAN"},
		{"true != 5;", "type mismatch: BOOLEAN != INTEGER"},
		{"true + false;", "unknown operator: BOOLEAN + BOOLEAN"},
		{"true < false;", "unknown operator: BOOLEAN < BOOLEAN"},
		{"5 / 0;", "division by zero"},
		{"5 / (2 - 2);", "division by zero"},
		{"foobar;", `evaluation not implemented for identifier "foobar"`},
		{"let a = 10;", "unsupported statement: let"},
		// The error aborts the program: trailing statements never run.
		{"5 + true; 5;", "type mismatch: INTEGER + BOOLEAN"},
		{"if (true) { 5 / 0; }; 99;", "division by zero"},
		// Errors inside operands surface before the operator is applied.
		{"(5 / 0) + 1;", "division by zero"},
		{"!(5 / 0);", "division by zero"},
		{"if (5 / 0) { 10; };", "division by zero"},
		{"return 5 / 0;", "division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			evaluated := testEval(t, tt.input)

			errObj, ok := evaluated.(*Error)
			if !ok {
				t.Fatalf("no error object returned. got=%T (%+v)", evaluated, evaluated)
			}
			if errObj.Message != tt.expectedMessage {
				t.Errorf("wrong error message. got=%q, want=%q", errObj.Message, tt.expectedMessage)
			}
		})
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	evaluated := testEval(t, "1 + 2;\n5 + true;")

	errObj, ok := evaluated.(*Error)
	if !ok {
		t.Fatalf("no error object returned. got=%T (%+v)", evaluated, evaluated)
	}
	if errObj.Line != 2 {
		t.Errorf("error line = %d, want 2 (Inspect: %s)", errObj.Line, errObj.Inspect())
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 + 5;", "10"},
		{"1 < 2;", "true"},
		{"if (false) { 1; };", "null"},
	}

	for _, tt := range tests {
		if got := testEval(t, tt.input).Inspect(); got != tt.expected {
			t.Errorf("Inspect(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
