// Package lox ties the scanner, parser and interpreter together into the
// entry points used by the command line tool.
package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jesperkha/lox/lox/ast"
	"github.com/jesperkha/lox/lox/interp"
	"github.com/jesperkha/lox/lox/parser"
	"github.com/jesperkha/lox/lox/scanner"
	"github.com/jesperkha/lox/lox/token"
)

// ScanSource scans src into tokens. If any token is malformed, all lexical
// errors are returned joined.
func ScanSource(src string) ([]token.Token, error) {
	s := scanner.New(src)
	toks := s.ScanAll()

	if s.NumErrors > 0 {
		return nil, s.Error()
	}

	return toks, nil
}

// ParseSource scans and parses src. If any declaration fails to parse, all
// parse errors are returned joined.
func ParseSource(src string) ([]ast.Stmt, error) {
	toks, err := ScanSource(src)
	if err != nil {
		return nil, err
	}

	p := parser.New(toks)
	stmts, _ := p.Parse()

	if p.NumErrors > 0 {
		return nil, p.Error()
	}

	return stmts, nil
}

// Session runs consecutive inputs against the same interpreter, so variables
// defined by one input are visible to the next.
type Session struct {
	interp *interp.Interpreter
	errors *ErrorHandler
	out    io.Writer
	log    *slog.Logger

	// Dump writes the parsed tree of each input to the output before running
	// it.
	Dump bool
}

// NewSession makes a Session writing print output to out. Runtime errors are
// passed to the given reporters as they occur, and returned from Run.
func NewSession(out io.Writer, reporters ...interp.ErrorReporter) *Session {
	errs := &ErrorHandler{}
	return &Session{
		interp: interp.New(out, append([]interp.ErrorReporter{errs}, reporters...)...),
		errors: errs,
		out:    out,
	}
}

// SetLogger enables debug tracing for the session and its interpreter.
func (s *Session) SetLogger(log *slog.Logger) {
	s.log = log
	s.interp.SetLogger(log)
}

// Run scans, parses and executes src. Nothing is executed if src has lexical
// or parse errors. Otherwise the runtime errors of the failed statements are
// returned joined, or nil if every statement succeeded.
func (s *Session) Run(src string) error {
	stmts, err := ParseSource(src)
	if err != nil {
		return err
	}

	if s.log != nil {
		s.log.Debug("parsed input", "statements", len(stmts))
	}

	if s.Dump {
		fmt.Fprint(s.out, ast.Dump(stmts))
	}

	s.errors.Reset()
	s.interp.Interpret(stmts)
	return s.errors.Error()
}

// RunFile runs the source of file.
func (s *Session) RunFile(file *token.File) error {
	if file.Err != nil {
		return fmt.Errorf("lox: %w", file.Err)
	}

	return s.Run(string(file.Src))
}

// Split returns the individual errors of a joined error, or err itself.
func Split(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

// Position returns the source position carried by a lexical, parse or
// runtime error. For joined errors the position of the first is returned.
func Position(err error) (token.Pos, bool) {
	var (
		lexErr     *scanner.Error
		parseErr   *parser.Error
		runtimeErr *interp.RuntimeError
	)

	switch {
	case errors.As(err, &lexErr):
		return lexErr.Pos, true
	case errors.As(err, &parseErr):
		// Empty input has no token to point at
		if parseErr.Token.Pos.Line == 0 {
			return token.Pos{}, false
		}
		return parseErr.Token.Pos, true
	case errors.As(err, &runtimeErr):
		return runtimeErr.Pos, true
	}

	return token.Pos{}, false
}

// IsIncomplete reports whether err was caused by the input ending too early,
// either inside a string or in the middle of a declaration. The REPL uses it
// to ask for another line of input.
func IsIncomplete(err error) bool {
	errs := Split(err)
	if len(errs) == 0 {
		return false
	}

	last := errs[len(errs)-1]
	return parser.IsIncomplete(last) || errors.Is(last, scanner.ErrUnterminatedString)
}
