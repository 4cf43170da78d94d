package ast

import (
	"testing"

	"github.com/arshidkv12/monkey/internal/token"
)

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Lexeme: "let"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Lexeme: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Lexeme: "anotherVar"},
					Value: "anotherVar",
				},
			},
			&ReturnStatement{
				Token: token.Token{Type: token.RETURN, Lexeme: "return"},
				Value: &IntegerLiteral{
					Token: token.Token{Type: token.INT, Lexeme: "5"},
					Value: 5,
				},
			},
		},
	}

	if program.String() != "let myVar = anotherVar;return 5;" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestIfExpressionString(t *testing.T) {
	exp := &IfExpression{
		Token: token.Token{Type: token.IF, Lexeme: "if"},
		Condition: &InfixExpression{
			Token:    token.Token{Type: token.GT, Lexeme: ">"},
			Left:     &IntegerLiteral{Token: token.Token{Type: token.INT, Lexeme: "10"}, Value: 10},
			Operator: ">",
			Right:    &IntegerLiteral{Token: token.Token{Type: token.INT, Lexeme: "1"}, Value: 1},
		},
		Consequence: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Lexeme: "{"},
			Statements: []Statement{
				&ExpressionStatement{
					Expression: &IntegerLiteral{Token: token.Token{Type: token.INT, Lexeme: "10"}, Value: 10},
				},
			},
		},
	}

	if exp.String() != "if(10 > 1) 10" {
		t.Errorf("exp.String() wrong. got=%q", exp.String())
	}
}
