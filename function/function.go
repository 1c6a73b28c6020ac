/*
File    : monkeymix/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the user-defined function value. It is kept
// separate from object so that a Function can capture a shared reference
// to its defining environment without object and environment importing
// each other — Function satisfies object.Object structurally, the same
// way every concrete type in object does.
package function

import (
	"bytes"
	"strings"

	"github.com/akashmaji946/monkeymix/ast"
	"github.com/akashmaji946/monkeymix/environment"
	"github.com/akashmaji946/monkeymix/object"
)

// Function is a closure: a parameter list, a body, and a shared reference
// to the environment active when the function literal was evaluated.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.ObjectType { return object.FUNCTION_OBJ }

func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
