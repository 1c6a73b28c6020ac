/*
File    : monkeymix/evaluator/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"fmt"

	"github.com/akashmaji946/monkeymix/object"
)

// newBuiltins builds the registry consulted by evalIdentifier whenever a
// name misses in the environment chain. e is captured so `puts` writes to
// whatever the evaluator's current Writer is, rather than hardcoding
// os.Stdout.
func newBuiltins(e *Evaluator) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"len": {
			Fn: func(args ...object.Object) object.Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. expected 1, got %d", len(args))
				}
				switch arg := args[0].(type) {
				case *object.String:
					return &object.Integer{Value: int64(len(arg.Value))}
				case *object.Array:
					return &object.Integer{Value: int64(len(arg.Elements))}
				default:
					return newError("argument to `len` not supported, got %s", args[0].Type())
				}
			},
		},
		"first": {
			Fn: func(args ...object.Object) object.Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. expected 1, got %d", len(args))
				}
				arr, ok := args[0].(*object.Array)
				if !ok {
					return newError("argument to `first` not supported, got %s", args[0].Type())
				}
				if len(arr.Elements) == 0 {
					return NULL
				}
				return arr.Elements[0]
			},
		},
		"last": {
			Fn: func(args ...object.Object) object.Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. expected 1, got %d", len(args))
				}
				arr, ok := args[0].(*object.Array)
				if !ok {
					return newError("argument to `last` not supported, got %s", args[0].Type())
				}
				length := len(arr.Elements)
				if length == 0 {
					return NULL
				}
				return arr.Elements[length-1]
			},
		},
		"rest": {
			Fn: func(args ...object.Object) object.Object {
				if len(args) != 1 {
					return newError("wrong number of arguments. expected 1, got %d", len(args))
				}
				arr, ok := args[0].(*object.Array)
				if !ok {
					return newError("argument to `rest` not supported, got %s", args[0].Type())
				}
				length := len(arr.Elements)
				if length == 0 {
					return NULL
				}
				newElements := make([]object.Object, length-1)
				copy(newElements, arr.Elements[1:length])
				return &object.Array{Elements: newElements}
			},
		},
		"push": {
			Fn: func(args ...object.Object) object.Object {
				if len(args) != 2 {
					return newError("wrong number of arguments. expected 2, got %d", len(args))
				}
				arr, ok := args[0].(*object.Array)
				if !ok {
					return newError("argument to `push` not supported, got %s", args[0].Type())
				}
				length := len(arr.Elements)
				newElements := make([]object.Object, length+1)
				copy(newElements, arr.Elements)
				newElements[length] = args[1]
				return &object.Array{Elements: newElements}
			},
		},
		"puts": {
			Fn: func(args ...object.Object) object.Object {
				for _, arg := range args {
					fmt.Fprintln(e.Writer, arg.Inspect())
				}
				return NULL
			},
		},
	}
}
