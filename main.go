package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"

	"github.com/sean-d/husk/evaluator"
	"github.com/sean-d/husk/lexer"
	"github.com/sean-d/husk/object"
	"github.com/sean-d/husk/parser"
	"github.com/sean-d/husk/repl"
)

const banner = `
 _               _
| |__  _   _ ___| | __
| '_ \| | | / __| |/ /
| | | | |_| \__ \   <
|_| |_|\__,_|___/_|\_\
`

// main is the process entrypoint. With no arguments it starts the
// interactive REPL; with one positional argument it treats that argument as
// a path to a source file, evaluates the whole file once, and exits —
// mirroring the REPL-vs-file dispatch of conneroisu-gix's CLI.
func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		runFile(flag.Arg(0))
		return
	}

	usr, err := user.Current()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s\n", banner)
	fmt.Printf("welcome %s to husk\n\n", usr.Username)

	repl.Start(os.Stdin, os.Stdout)
}

// runFile evaluates a single source file non-interactively, printing parse
// errors or the resulting value's Inspect() form, then exits with a
// non-zero status if evaluation produced an error.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "husk: %v\n", err)
		os.Exit(1)
	}

	l := lexer.New(string(src))
	p := parser.New(l)

	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	fmt.Println(result.Inspect())
	if result.Type() == object.ERROR_OBJ {
		os.Exit(1)
	}
}
