/*
File    : monkeymix/evaluator/evaluator_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"github.com/akashmaji946/monkeymix/environment"
	"github.com/akashmaji946/monkeymix/function"
	"github.com/akashmaji946/monkeymix/object"
)

// applyFunction covers both runtime callables: a user Function gets a
// fresh call frame and one ReturnValue unwrap; a Builtin is invoked
// directly and its result passed through untouched.
func (e *Evaluator) applyFunction(fn object.Object, args []object.Object) object.Object {
	switch fn := fn.(type) {

	case *function.Function:
		if len(args) != len(fn.Parameters) {
			return newError("wrong number of arguments: expected %d, got %d", len(fn.Parameters), len(args))
		}
		extendedEnv := extendFunctionEnv(fn, args)
		evaluated := e.Eval(fn.Body, extendedEnv)
		return unwrapReturnValue(evaluated)

	case *object.Builtin:
		return fn.Fn(args...)

	default:
		return newError("not a function: %s", fn.Type())
	}
}

// extendFunctionEnv binds parameters positionally in a frame nested
// inside the function's captured environment. applyFunction has already
// checked that args and fn.Parameters are the same length.
func extendFunctionEnv(fn *function.Function, args []object.Object) *environment.Environment {
	env := environment.NewEnclosedEnvironment(fn.Env)

	for i, param := range fn.Parameters {
		env.Set(param.Name, args[i])
	}

	return env
}

func unwrapReturnValue(obj object.Object) object.Object {
	if returnValue, ok := obj.(*object.ReturnValue); ok {
		return returnValue.Value
	}
	return obj
}
