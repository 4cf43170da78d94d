// Package evaluator reduces a parsed program to a single runtime value.
//
// Evaluation is a pure recursive walk over the AST: no environment, no
// mutable shared state, no I/O. The language has no static type checker, so
// every type error is detected at the evaluation of the offending node and is
// fatal — it aborts the whole program as an *Error object that every
// evaluation loop propagates without recovery.
package evaluator

import "github.com/arshidkv12/monkey/internal/ast"

// Eval reduces a single node to an object. Errors that bubble up without a
// source position are stamped with the node's token here.
func Eval(node ast.Node) Object {
	obj := evalCore(node)
	if err, ok := obj.(*Error); ok && err.Line == 0 {
		if provider, ok := node.(ast.TokenProvider); ok {
			tok := provider.GetToken()
			err.Line = tok.Line
			err.Column = tok.Column
		}
	}
	return obj
}

func evalCore(node ast.Node) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return EvalProgram(node)
	case *ast.ExpressionStatement:
		return Eval(node.Expression)
	case *ast.ReturnStatement:
		return evalReturnStatement(node)
	case *ast.BlockStatement:
		return evalBlockStatement(node)
	case *ast.LetStatement:
		// Bindings are parsed but intentionally not evaluated.
		return newError("unsupported statement: let")

	// Expressions
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.PrefixExpression:
		right := Eval(node.Right)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)
	case *ast.InfixExpression:
		left := Eval(node.Left)
		if isError(left) {
			return left
		}
		right := Eval(node.Right)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)
	case *ast.IfExpression:
		return evalIfExpression(node)
	case *ast.Identifier:
		return newError("evaluation not implemented for identifier %q", node.Value)
	}

	return newError("evaluation not implemented for node %s", node.TokenLiteral())
}

// EvalProgram evaluates the top-level statement list and unwraps a trailing
// ReturnValue exactly once. This is the only place the return wrapper is
// stripped; callers never see one.
func EvalProgram(program *ast.Program) Object {
	var result Object = NULL

	for _, statement := range program.Statements {
		result = Eval(statement)

		switch result := result.(type) {
		case *ReturnValue:
			return result.Value
		case *Error:
			return result
		}
	}

	return result
}
