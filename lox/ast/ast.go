package ast

import (
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/value"
)

type (
	Node interface {
		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	Expr interface {
		Node
		exprNode()
	}

	// Statements make up a program. There is no separate declaration node
	// type, a variable declaration is a statement like any other.
	Stmt interface {
		Node
		stmtNode()
	}
)

type (
	// Assignment to a named variable, eg. "a = 1". Assignment is an
	// expression and evaluates to the assigned value.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	Binary struct {
		Left  Expr
		Op    Operator
		Right Expr
	}

	// Parenthesized expression.
	Grouping struct {
		Inner Expr
	}

	// Primitive literal, eg. string, number, bool or nil.
	Literal struct {
		Value value.Value
	}

	Unary struct {
		Op    Operator
		Right Expr
	}

	// Reference to a named variable.
	Variable struct {
		Name token.Token
	}
)

type (
	Block struct {
		Stmts []Stmt
	}

	ExprStmt struct {
		E Expr
	}

	Print struct {
		E Expr
	}

	// Variable declaration, eg. "var a = 1;". Init is nil when no
	// initializer is given.
	Var struct {
		Name token.Token
		Init Expr
	}

	If struct {
		Cond Expr
		Then Stmt
		Else Stmt // Is nil when there is no else branch
	}

	// While loop. For loops are desugared into a block with a While.
	While struct {
		Cond Expr
		Body Stmt
	}
)

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

func (*Block) stmtNode()    {}
func (*ExprStmt) stmtNode() {}
func (*Print) stmtNode()    {}
func (*Var) stmtNode()      {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
