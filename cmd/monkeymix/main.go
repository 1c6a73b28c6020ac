/*
File    : monkeymix/cmd/monkeymix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main wires command-line mode selection around the interpreter
core. Mode dispatch, flag parsing, and file reading are external
collaborators — the core packages never know whether their input came
from a REPL line, a file, or an inline -e string.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/monkeymix/evaluator"
	"github.com/akashmaji946/monkeymix/lexer"
	"github.com/akashmaji946/monkeymix/object"
	"github.com/akashmaji946/monkeymix/parser"
	"github.com/akashmaji946/monkeymix/repl"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

const version = "v1.0.0"

var redColor = color.New(color.FgRed)

func main() {
	cmd := &cli.Command{
		Name:    "monkeymix",
		Usage:   "a tree-walking interpreter for a small expression language",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "evaluate an inline expression instead of starting the REPL",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "trace mode for a file or an -e expression: lexer, parser, or eval (default)",
				Value: "eval",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file", UsageText: "source file to run"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if expr := cmd.String("eval"); expr != "" {
		return runMode(cmd.String("mode"), expr, os.Stdout)
	}

	file := cmd.StringArg("file")
	if file == "" {
		r := repl.New(version, "monkeymix >> ")
		return r.Start(os.Stdout)
	}

	source, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return runMode(cmd.String("mode"), string(source), os.Stdout)
}

// runMode drives one of the three tracing modes named in the driver
// contract: lexer prints every token until END, parser prints the
// canonical AST form, eval prints the final value's inspect() form.
func runMode(mode, source string, stdout io.Writer) error {
	switch mode {
	case "lexer":
		l := lexer.NewLexer(source)
		for {
			tok := l.NextToken()
			fmt.Fprintf(stdout, "%s(%q)\n", tok.Type, tok.Literal)
			if tok.Type == lexer.END {
				return nil
			}
		}

	case "parser":
		p := parser.NewParser(lexer.NewLexer(source))
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			for _, msg := range p.Errors() {
				redColor.Fprintln(stdout, msg)
			}
			return nil
		}
		fmt.Fprintln(stdout, program.String())
		return nil

	default:
		p := parser.NewParser(lexer.NewLexer(source))
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			program = nil
		}
		ev := evaluator.New()
		result := ev.Run(program, p.Errors())
		if errObj, ok := result.(*object.Error); ok {
			redColor.Fprintln(stdout, errObj.Inspect())
			return nil
		}
		fmt.Fprintln(stdout, result.Inspect())
		return nil
	}
}
