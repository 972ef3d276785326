package ast

import (
	"strings"

	"github.com/jesperkha/lox/lox/value"
)

type Visitor interface {
	VisitBlock(node *Block)
	VisitExprStmt(node *ExprStmt)
	VisitPrint(node *Print)
	VisitVar(node *Var)
	VisitIf(node *If)
	VisitWhile(node *While)

	VisitAssign(node *Assign)
	VisitBinary(node *Binary)
	VisitGrouping(node *Grouping)
	VisitLiteral(node *Literal)
	VisitUnary(node *Unary)
	VisitVariable(node *Variable)
}

func (n *Block) Accept(v Visitor)    { v.VisitBlock(n) }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *Print) Accept(v Visitor)    { v.VisitPrint(n) }
func (n *Var) Accept(v Visitor)      { v.VisitVar(n) }
func (n *If) Accept(v Visitor)       { v.VisitIf(n) }
func (n *While) Accept(v Visitor)    { v.VisitWhile(n) }

func (n *Assign) Accept(v Visitor)   { v.VisitAssign(n) }
func (n *Binary) Accept(v Visitor)   { v.VisitBinary(n) }
func (n *Grouping) Accept(v Visitor) { v.VisitGrouping(n) }
func (n *Literal) Accept(v Visitor)  { v.VisitLiteral(n) }
func (n *Unary) Accept(v Visitor)    { v.VisitUnary(n) }
func (n *Variable) Accept(v Visitor) { v.VisitVariable(n) }

// Walk calls Accept on each statement in order.
func Walk(stmts []Stmt, v Visitor) {
	for _, stmt := range stmts {
		stmt.Accept(v)
	}
}

// Dump returns an indented tree of the statements, one node per line.
func Dump(stmts []Stmt) string {
	d := NewTreeVisitor()
	Walk(stmts, d)
	return d.String()
}

// TreeVisitor implements the Visitor interface. It prints out each node as
// it visits it, forming a fully printed AST.
type TreeVisitor struct {
	sb     *strings.Builder
	indent int
}

func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{
		sb:     &strings.Builder{},
		indent: 0,
	}
}

func (d *TreeVisitor) String() string {
	return d.sb.String()
}

func (d *TreeVisitor) write(s string) {
	d.sb.WriteString(strings.Repeat("  ", d.indent) + s + "\n")
}

func (d *TreeVisitor) child(n Node) {
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *TreeVisitor) VisitBlock(node *Block) {
	d.write("block:")
	d.indent++
	for _, stmt := range node.Stmts {
		stmt.Accept(d)
	}
	d.indent--
}

func (d *TreeVisitor) VisitExprStmt(node *ExprStmt) {
	d.write("expr:")
	d.child(node.E)
}

func (d *TreeVisitor) VisitPrint(node *Print) {
	d.write("print:")
	d.child(node.E)
}

func (d *TreeVisitor) VisitVar(node *Var) {
	d.write("var: " + node.Name.Lexeme)
	if node.Init != nil {
		d.child(node.Init)
	}
}

func (d *TreeVisitor) VisitIf(node *If) {
	d.write("if:")
	d.child(node.Cond)
	d.write("then:")
	d.child(node.Then)
	if node.Else != nil {
		d.write("else:")
		d.child(node.Else)
	}
}

func (d *TreeVisitor) VisitWhile(node *While) {
	d.write("while:")
	d.child(node.Cond)
	d.write("do:")
	d.child(node.Body)
}

func (d *TreeVisitor) VisitAssign(node *Assign) {
	d.write("assign: " + node.Name.Lexeme)
	d.child(node.Value)
}

func (d *TreeVisitor) VisitBinary(node *Binary) {
	d.write("binary: " + node.Op.String())
	d.child(node.Left)
	d.child(node.Right)
}

func (d *TreeVisitor) VisitGrouping(node *Grouping) {
	d.write("group:")
	d.child(node.Inner)
}

func (d *TreeVisitor) VisitLiteral(node *Literal) {
	d.write("literal: " + literalString(node.Value))
}

func (d *TreeVisitor) VisitUnary(node *Unary) {
	d.write("unary: " + node.Op.String())
	d.child(node.Right)
}

func (d *TreeVisitor) VisitVariable(node *Variable) {
	d.write("ident: " + node.Name.Lexeme)
}

// Strings are quoted so they can be told apart from identifiers and
// keywords.
func literalString(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return "\"" + string(s) + "\""
	}
	return v.String()
}
