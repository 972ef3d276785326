package ast

import (
	"fmt"
	"strings"
)

// Format renders the statements as source code with ideal formatting. Parsing
// the output again gives a program with the same behavior.
func Format(stmts []Stmt) string {
	p := NewPrinter()
	Walk(stmts, p)
	return p.String()
}

// FormatExpr renders a single expression as source code.
func FormatExpr(e Expr) string {
	p := NewPrinter()
	e.Accept(p)
	return p.String()
}

// Printer prints the AST identically to its source, with ideal formatting.
// Used for testing the parser (by comparing AST to string) and for debugging.
type Printer struct {
	sb          *strings.Builder
	indentLevel int
	indented    bool
}

func NewPrinter() *Printer {
	return &Printer{
		sb:          &strings.Builder{},
		indentLevel: 0,
	}
}

func (d *Printer) String() string {
	return d.sb.String()
}

func (d *Printer) write(f string, args ...any) {
	if d.indentLevel != 0 && !d.indented {
		s := strings.Repeat("    ", d.indentLevel) + fmt.Sprintf(f, args...)
		d.sb.WriteString(s)
	} else {
		fmt.Fprintf(d.sb, f, args...)
	}
	d.indented = true
}

func (d *Printer) writeln(f string, args ...any) {
	d.write(f+"\n", args...)
	d.indented = false
}

func (d *Printer) indent(n Node) {
	d.indentLevel++
	n.Accept(d)
	d.indentLevel--
}

// body prints the branch of an if or while. Blocks stay on the same line,
// other statements are indented on the next.
func (d *Printer) body(n Stmt) {
	if b, ok := n.(*Block); ok {
		d.write(" ")
		b.Accept(d)
		return
	}

	d.writeln("")
	d.indent(n)
}

func (d *Printer) VisitBlock(node *Block) {
	d.writeln("{")
	for _, stmt := range node.Stmts {
		d.indent(stmt)
	}
	d.writeln("}")
}

func (d *Printer) VisitExprStmt(node *ExprStmt) {
	node.E.Accept(d)
	d.writeln(";")
}

func (d *Printer) VisitPrint(node *Print) {
	d.write("print ")
	node.E.Accept(d)
	d.writeln(";")
}

func (d *Printer) VisitVar(node *Var) {
	d.write("var %s", node.Name.Lexeme)
	if node.Init != nil {
		d.write(" = ")
		node.Init.Accept(d)
	}
	d.writeln(";")
}

func (d *Printer) VisitIf(node *If) {
	d.write("if (")
	node.Cond.Accept(d)
	d.write(")")
	d.body(node.Then)

	if node.Else != nil {
		d.write("else")
		d.body(node.Else)
	}
}

func (d *Printer) VisitWhile(node *While) {
	d.write("while (")
	node.Cond.Accept(d)
	d.write(")")
	d.body(node.Body)
}

func (d *Printer) VisitAssign(node *Assign) {
	d.write("%s = ", node.Name.Lexeme)
	node.Value.Accept(d)
}

func (d *Printer) VisitBinary(node *Binary) {
	node.Left.Accept(d)
	d.write(" %s ", node.Op)
	node.Right.Accept(d)
}

func (d *Printer) VisitGrouping(node *Grouping) {
	d.write("(")
	node.Inner.Accept(d)
	d.write(")")
}

func (d *Printer) VisitLiteral(node *Literal) {
	d.write("%s", literalString(node.Value))
}

func (d *Printer) VisitUnary(node *Unary) {
	d.write("%s", node.Op)
	node.Right.Accept(d)
}

func (d *Printer) VisitVariable(node *Variable) {
	d.write("%s", node.Name.Lexeme)
}
