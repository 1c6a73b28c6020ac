/*
File    : monkeymix/evaluator/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package evaluator walks an *ast.Program and produces runtime
// object.Object values. There are no exceptions anywhere in this
// package: every failure is represented as a first-class *object.Error
// and propagated by ordinary early return, exactly like any other value.
package evaluator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/monkeymix/ast"
	"github.com/akashmaji946/monkeymix/environment"
	"github.com/akashmaji946/monkeymix/function"
	"github.com/akashmaji946/monkeymix/object"
)

// Canonical singletons. The evaluator never constructs a fresh Boolean or
// Null — it always hands out one of these three, which is what makes
// identity comparison correct for non-integer equality.
var (
	TRUE  = &object.Boolean{Value: true}
	FALSE = &object.Boolean{Value: false}
	NULL  = &object.Null{}
)

// Evaluator holds the state threaded through one evaluation session: the
// global environment (so that `let` bindings persist across successive
// REPL inputs), the builtin registry, and the writer `puts` prints to.
type Evaluator struct {
	Global   *environment.Environment
	Builtins map[string]*object.Builtin
	Writer   io.Writer
}

// New creates an Evaluator with a fresh global environment, the standard
// builtin registry, and output directed to stdout.
func New() *Evaluator {
	e := &Evaluator{
		Global: environment.NewEnvironment(),
		Writer: os.Stdout,
	}
	e.Builtins = newBuiltins(e)
	return e
}

// SetWriter redirects the destination of `puts`, primarily for tests that
// want to capture output instead of writing to the real stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// ResetEnv discards the current global environment and starts fresh,
// dropping every `let` binding accumulated so far.
func (e *Evaluator) ResetEnv() {
	e.Global = environment.NewEnvironment()
}

// Run parses nothing itself — it evaluates an already-parsed program
// against the evaluator's persistent global environment. A nil program
// (the caller's parse produced one or more errors and gave up) is
// reported as a single aborting error rather than panicking.
func (e *Evaluator) Run(program *ast.Program, parseErrors []string) object.Object {
	if program == nil {
		return &object.Error{Message: "abort: " + strings.Join(parseErrors, "; ")}
	}
	return e.Eval(program, e.Global)
}

// Eval is the recursive AST walk. It dispatches purely on the concrete
// type of node; every branch either returns a value object, an
// *object.Error, or an *object.ReturnValue destined to be unwrapped by
// the nearest enclosing Program or function call.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Name, val)
		return NULL

	case *ast.ReturnStatement:
		val := e.Eval(node.Value, env)
		if isError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return nativeBoolToBooleanObject(node.Value)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		fn := e.Eval(node.Function, env)
		if isError(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments, env)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return e.applyFunction(fn, args)

	case *ast.IndexExpression:
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index, env)
		if isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)
	}

	return NULL
}

// evalProgram unwraps a ReturnValue the moment it bubbles to the root —
// this is the one place besides apply_function that a return unwinds.
func (e *Evaluator) evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement deliberately does NOT unwrap ReturnValue, so that a
// `return` nested inside an if-block propagates the wrapped form all the
// way out to the nearest function call or program root.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *environment.Environment) []object.Object {
	var result []object.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Name); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Name]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Name)
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}
