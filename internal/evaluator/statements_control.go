package evaluator

import "github.com/arshidkv12/monkey/internal/ast"

// evalBlockStatement evaluates statements in order; the last value wins. A
// ReturnValue or Error short-circuits the scan and is propagated unwrapped so
// it keeps unwinding the enclosing sequences.
func evalBlockStatement(block *ast.BlockStatement) Object {
	var result Object = NULL

	for _, statement := range block.Statements {
		result = Eval(statement)

		if result != nil {
			rt := result.Type()
			if rt == RETURN_VALUE_OBJ || rt == ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func evalReturnStatement(node *ast.ReturnStatement) Object {
	val := Eval(node.Value)
	if isError(val) {
		return val
	}
	// val is never a ReturnValue itself: return is a statement, so the inner
	// expression cannot produce a wrapped value. The wrapper never nests.
	return &ReturnValue{Value: val}
}
