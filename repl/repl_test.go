package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartEvaluatesExpressionsAcrossLines(t *testing.T) {
	in := strings.NewReader("let x = 5;\nlet y = 10;\nx + y;\n")
	out := &bytes.Buffer{}

	Start(in, out)

	assert.Contains(t, out.String(), "15")
}

func TestStartReportsParseErrors(t *testing.T) {
	in := strings.NewReader("let x 5;\n")
	out := &bytes.Buffer{}

	Start(in, out)

	assert.Contains(t, out.String(), "parser errors")
}

func TestStartExitsOnExitCommand(t *testing.T) {
	in := strings.NewReader("let x = 1;\nexit\nx;\n")
	out := &bytes.Buffer{}

	Start(in, out)

	assert.Empty(t, out.String(), "exit should stop the loop before \"x;\" is evaluated")
}

func TestStartSupportsClosuresAcrossLines(t *testing.T) {
	in := strings.NewReader(
		"let newAdder = fn(x) { fn(y) { x + y; }; };\n" +
			"let addTwo = newAdder(2);\n" +
			"addTwo(3);\n",
	)
	out := &bytes.Buffer{}

	Start(in, out)

	assert.Contains(t, out.String(), "5")
}
