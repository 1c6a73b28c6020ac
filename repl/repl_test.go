/*
File    : monkeymix/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/monkeymix/evaluator"
	"github.com/stretchr/testify/assert"
)

func TestEvalLinePersistsBindingsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := New("test", ">> ")
	ev := evaluator.New()
	ev.SetWriter(&buf)

	r.evalLine(&buf, ev, "let x = 5;")
	r.evalLine(&buf, ev, "x + 1;")

	assert.Contains(t, buf.String(), "6")
}

func TestEvalLineReportsParseErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("test", ">> ")
	ev := evaluator.New()
	ev.SetWriter(&buf)

	r.evalLine(&buf, ev, "let = 5;")

	assert.Contains(t, buf.String(), "expected next token to be `IDENT`")
}

func TestEvalLineReportsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("test", ">> ")
	ev := evaluator.New()
	ev.SetWriter(&buf)

	r.evalLine(&buf, ev, "5 + true;")

	assert.Contains(t, buf.String(), "type mismatch: INTEGER + BOOLEAN")
}

func TestSessionIDIsUnique(t *testing.T) {
	a := New("test", ">> ")
	b := New("test", ">> ")
	assert.NotEqual(t, a.id, b.id)
}
