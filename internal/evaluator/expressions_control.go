package evaluator

import "github.com/arshidkv12/monkey/internal/ast"

// evalIfExpression selects the consequence only when the condition is exactly
// the Boolean true — any other value, including integers and null, selects
// the alternative. A missing alternative evaluates to null.
func evalIfExpression(ie *ast.IfExpression) Object {
	condition := Eval(ie.Condition)
	if isError(condition) {
		return condition
	}

	if b, ok := condition.(*Boolean); ok && b.Value {
		return evalBlockStatement(ie.Consequence)
	}
	if ie.Alternative != nil {
		return evalBlockStatement(ie.Alternative)
	}
	return NULL
}
