// Package repl implements the Read-Eval-Print Loop for husk.
//
// The REPL drives the lexer, parser, and evaluator one line at a time: it
// reads a line, lexes+parses it, and either prints the accumulated parse
// errors or evaluates the resulting program and prints the result. No state
// persists between REPL invocations other than the object.Environment
// threaded through the loop, so "let" bindings and function definitions
// carry forward from one line to the next within a single session.
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/sean-d/husk/evaluator"
	"github.com/sean-d/husk/lexer"
	"github.com/sean-d/husk/object"
	"github.com/sean-d/husk/parser"
)

// PROMPT is the literal prompt string shown before every line.
const PROMPT = ">> "

// Color definitions for REPL output. Mirroring the palette keeps errors
// visually distinct from ordinary results without needing a separate
// logging layer.
var (
	promptColor = color.New(color.FgCyan)
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

const sadFace = `
(◞‸ ◟)💧
`

// Start runs the REPL loop, reading from in and writing to out. It returns
// when in reaches EOF (Ctrl+D) or the user types "exit"/"quit".
func Start(in io.Reader, out io.Writer) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: promptColor.Sprint(PROMPT),
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			return
		}

		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			return
		}

		rl.SaveHistory(line)

		l := lexer.New(line)
		p := parser.New(l)

		program := p.ParseProgram()
		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors())
			continue
		}

		evaluated := evaluator.Eval(program, env)
		if evaluated != nil {
			if evaluated.Type() == object.ERROR_OBJ {
				errorColor.Fprintf(out, "%s\n", evaluated.Inspect())
			} else {
				resultColor.Fprintf(out, "%s\n", evaluated.Inspect())
			}
		}
	}
}

func printParserErrors(out io.Writer, errors []string) {
	errorColor.Fprint(out, sadFace)
	errorColor.Fprintln(out, "what'd you doooo?!")
	errorColor.Fprintln(out, " parser errors:")
	for _, msg := range errors {
		errorColor.Fprintf(out, "\t%s\n", msg)
	}
}
