/*
File    : monkeymix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop for the
monkeymix interpreter. It is an external collaborator of the evaluator
core: its only contract with eval/lexer/parser is to hand them a source
string and render back whatever Object or error they return.
*/
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akashmaji946/monkeymix/evaluator"
	"github.com/akashmaji946/monkeymix/lexer"
	"github.com/akashmaji946/monkeymix/object"
	"github.com/akashmaji946/monkeymix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Color definitions for REPL output. Kept separate from inspect() forms —
// the driver contract in the core packages never emits ANSI codes itself.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  __  __             _             __  __ _____  __
 |  \/  | ___  _ __ | | _____ _   |  \/  |_ _\ \/ /
 | |\/| |/ _ \| '_ \| |/ / _ \ | | | |\/| || | \  /
 | |  | | (_) | | | |   <  __/ |_| | |  | || | /  \
 |_|  |_|\___/|_| |_|_|\_\___|\__, |_|  |_|___/_/\_\
                               |___/
`

// Repl is one interactive session. Every session gets its own id, used to
// namespace the readline history file so concurrent sessions never
// clobber each other's history.
type Repl struct {
	Version string
	Prompt  string
	id      uuid.UUID
}

// New creates a Repl tagged with a fresh session id.
func New(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt, id: uuid.New()}
}

func (r *Repl) historyFile() string {
	return filepath.Join(os.TempDir(), "monkeymix_history_"+r.id.String()+".tmp")
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", 54))
	greenColor.Fprint(w, banner)
	blueColor.Fprintln(w, strings.Repeat("-", 54))
	yellowColor.Fprintf(w, "monkeymix %s | session %s\n", r.Version, r.id.String()[:8])
	cyanColor.Fprintln(w, "Type an expression and press enter. Type 'quit' to exit.")
	blueColor.Fprintln(w, strings.Repeat("-", 54))
}

// Start runs the interactive loop against w until EOF or the `quit`
// command. The evaluator's global environment persists across inputs, so
// `let` bindings from one line are visible on the next.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.historyFile(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	defer os.Remove(r.historyFile())

	ev := evaluator.New()
	ev.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		r.evalLine(w, ev, line)
	}
}

func (r *Repl) evalLine(w io.Writer, ev *evaluator.Evaluator, line string) {
	p := parser.NewParser(lexer.NewLexer(line))
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintln(w, msg)
		}
		return
	}

	result := ev.Run(program, p.Errors())
	if result == nil {
		return
	}
	if errObj, ok := result.(*object.Error); ok {
		redColor.Fprintln(w, errObj.Inspect())
		return
	}
	yellowColor.Fprintln(w, result.Inspect())
}
