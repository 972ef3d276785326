package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/jesperkha/lox/lox"
	"github.com/jesperkha/lox/lox/config"
	"github.com/jesperkha/lox/lox/interp"
	"github.com/jesperkha/lox/lox/token"
	"github.com/jesperkha/lox/lox/util"
	"github.com/peterh/liner"
)

// Exit codes from sysexits.h
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lox: ")

	configPath := flag.String("config", config.DefaultPath(), "path to YAML configuration file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: lox [-config path] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	session := lox.NewSession(os.Stdout)
	session.Dump = conf.DumpAST
	if conf.Debug {
		session.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() == 1 {
		os.Exit(runFile(session, flag.Arg(0)))
	}

	repl(session, conf)
}

func runFile(session *lox.Session, filename string) int {
	file := token.NewFile(filename, nil)
	if file.Err != nil {
		log.Print(file.Err)
		return exitNoInput
	}

	err := session.RunFile(file)
	if err == nil {
		return 0
	}

	report(file, err)

	var rerr *interp.RuntimeError
	if errors.As(err, &rerr) {
		return exitSoftware
	}
	return exitDataErr
}

func repl(session *lox.Session, conf *config.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if conf.History != "" {
		if f, err := os.Open(conf.History); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}

		defer func() {
			if f, err := os.Create(conf.History); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		src, ok := readInput(ln, conf.Prompt, conf.Continuation)
		if !ok {
			fmt.Println()
			return
		}

		if strings.TrimSpace(src) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := session.Run(src); err != nil {
			report(token.NewFile("<stdin>", src), err)
		}
	}
}

// readInput reads lines until they form input that is not cut off in the
// middle of a declaration or string. Returns false at end of input.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var sb strings.Builder

	for {
		p := prompt
		if sb.Len() > 0 {
			p = cont
		}

		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Aborted with ctrl-c, discard the input
			return "", true
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		src := sb.String()
		if _, err := lox.ParseSource(src); err != nil && lox.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// report prints each error with the source line it points at.
func report(file *token.File, err error) {
	for _, e := range lox.Split(err) {
		pos, ok := lox.Position(e)
		if !ok {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
			continue
		}

		fmt.Fprintln(os.Stderr, util.Pretty(pos.Line, file.Line(pos.Line), e.Error(), pos.Col))
	}
}
