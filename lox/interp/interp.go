// Package interp implements a tree walking interpreter for parsed programs.
// Global state persists between calls to Interpret, so one Interpreter can
// serve a whole REPL session.
package interp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/env"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/util"
	"github.com/jesperkha/lox/lox/value"
)

// ErrorReporter is notified once for every top-level statement that fails.
type ErrorReporter interface {
	Report(err *RuntimeError)
}

// ReporterFunc adapts a plain function to the ErrorReporter interface.
type ReporterFunc func(err *RuntimeError)

func (f ReporterFunc) Report(err *RuntimeError) {
	f(err)
}

type Interpreter struct {
	env       *env.Environment
	out       io.Writer
	reporters []ErrorReporter
	log       *slog.Logger // Nil disables tracing
}

// New makes an Interpreter writing print output to out.
func New(out io.Writer, reporters ...ErrorReporter) *Interpreter {
	return &Interpreter{
		env:       env.New(),
		out:       out,
		reporters: reporters,
	}
}

// SetLogger enables debug tracing of executed statements.
func (i *Interpreter) SetLogger(log *slog.Logger) {
	i.log = log
}

// Interpret executes each statement in order. A failing statement is reported
// to every reporter and execution continues with the next one.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		err := i.Execute(stmt)
		if err == nil {
			continue
		}

		var rerr *RuntimeError
		util.Assert(errors.As(err, &rerr), "execute returned non-runtime error: %v", err)

		if i.log != nil {
			i.log.Debug("statement failed", "err", rerr)
		}

		for _, r := range i.reporters {
			r.Report(rerr)
		}
	}
}

// Execute runs a single statement.
func (i *Interpreter) Execute(stmt ast.Stmt) error {
	if i.log != nil {
		i.log.Debug("execute", "stmt", fmt.Sprintf("%T", stmt), "depth", i.env.Depth())
	}

	switch s := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(s)

	case *ast.ExprStmt:
		_, err := i.Evaluate(s.E)
		return err

	case *ast.Print:
		v, err := i.Evaluate(s.E)
		if err != nil {
			return err
		}

		fmt.Fprintln(i.out, v.String())
		return nil

	case *ast.Var:
		var v value.Value = value.Nil{}
		if s.Init != nil {
			init, err := i.Evaluate(s.Init)
			if err != nil {
				return err
			}
			v = init
		}

		if err := i.env.Define(s.Name.Lexeme, v); err != nil {
			return envError(err, s.Name)
		}
		return nil

	case *ast.If:
		cond, err := i.Evaluate(s.Cond)
		if err != nil {
			return err
		}

		if value.Truthy(cond) {
			return i.Execute(s.Then)
		}
		if s.Else != nil {
			return i.Execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := i.Evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}

			if err := i.Execute(s.Body); err != nil {
				return err
			}
		}
	}

	panic(fmt.Sprintf("unhandled statement type %T", stmt))
}

func (i *Interpreter) executeBlock(block *ast.Block) error {
	i.env.Push()
	defer func() {
		err := i.env.Pop()
		util.Assert(err == nil, "failed to exit block scope: %v", err)
	}()

	for _, stmt := range block.Stmts {
		if err := i.Execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

// Converts an environment error to a RuntimeError positioned at name.
func envError(err error, name token.Token) *RuntimeError {
	rerr := &RuntimeError{
		Name: name.Lexeme,
		Pos:  name.Pos,
	}

	switch {
	case errors.Is(err, env.ErrAlreadyDefined):
		rerr.Kind = ErrAlreadyDefined
	case errors.Is(err, env.ErrUndefined):
		rerr.Kind = ErrUndefinedVariable
	default:
		panic(fmt.Sprintf("unexpected environment error: %v", err))
	}

	return rerr
}
