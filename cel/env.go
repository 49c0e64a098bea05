// Package cel is the public surface of the core engine (spec §6.2): an Env
// that owns a root Context and feature configuration, a Program produced
// from a pre-built AST, and re-exports of the value constructors/accessors a
// host program needs without reaching into the value package directly.
//
// Grounded on the teacher's cel/env.go and cel/options.go functional-options
// idiom, collapsed to this module's scope: there is no parser or type
// checker here (spec §1 places lexing/parsing out of scope, consumed
// externally per §6.1), so Env.Compile takes an already-built *celast.Expr
// rather than a source string.
package cel

import (
	"github.com/cel-core/cel/celcontext"
	"github.com/cel-core/cel/interpreter"
	"github.com/cel-core/cel/interpreter/functions"
	"github.com/cel-core/cel/stdlib"
	"github.com/cel-core/cel/value"
)

// Env holds the configuration shared by every Program it compiles: feature
// gates, a recursion depth bound, and the set of host variables/functions
// declared ahead of time. It mirrors cel.Env without the type-checking
// declarations the teacher attaches (no checker in this module's scope).
type Env struct {
	features          interpreter.FeatureSet
	maxRecursionDepth int
	dispatcher        *functions.Dispatcher
	configure         []func(*celcontext.Context)
}

// EnvOption configures an Env at construction time, matching the teacher's
// cel.EnvOption functional-option pattern (cel/options.go).
type EnvOption func(*Env)

// Features sets the optional standard-library feature gates (spec §6.3).
// The zero Env has every feature disabled; most hosts will pass
// interpreter.AllFeatures() unless they specifically want built-ins
// unregistered.
func Features(f interpreter.FeatureSet) EnvOption {
	return func(e *Env) { e.features = f }
}

// MaxRecursionDepth sets the recursion bound every Context created from this
// Env enforces (spec §4.2).
func MaxRecursionDepth(depth int) EnvOption {
	return func(e *Env) { e.maxRecursionDepth = depth }
}

// DeclareVariable pre-binds a root-scope variable on every Context this Env
// produces, the functional-option equivalent of the teacher's
// cel.Variable(name, type) declaration (minus the type-checking half, which
// has no counterpart here: there is no checker in this module's scope).
func DeclareVariable(name string, v value.Value) EnvOption {
	return func(e *Env) {
		e.configure = append(e.configure, func(ctx *celcontext.Context) {
			ctx.AddVariable(name, v)
		})
	}
}

// DeclareFunction registers a host overload under name on every Context this
// Env produces, the functional-option equivalent of cel.Function in the
// teacher.
func DeclareFunction(name string, fn *celcontext.Function) EnvOption {
	return func(e *Env) {
		e.configure = append(e.configure, func(ctx *celcontext.Context) {
			ctx.AddFunction(name, fn)
		})
	}
}

// NewEnv constructs an Env with the standard library registered according to
// the configured feature gates, plus any host functions/variables supplied
// via DeclareFunction/DeclareVariable options.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{dispatcher: functions.NewDispatcher()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewContext builds a fresh root Context for this Env: the standard library
// (gated by e.features) plus any host declarations registered via
// DeclareFunction/DeclareVariable, ready for a Program to execute against.
func (e *Env) NewContext() *celcontext.Context {
	ctx := celcontext.NewContext(e.maxRecursionDepth)
	stdlib.Register(ctx, e.features)
	for _, configure := range e.configure {
		configure(ctx)
	}
	return ctx
}

// Dispatcher returns the lazy-overload dispatcher this Env's Interpreter
// will be built with (interpreter/functions.Dispatcher), for hosts that need
// to register their own lazy (unevaluated-argument) overloads.
func (e *Env) Dispatcher() *functions.Dispatcher {
	return e.dispatcher
}

// Features returns the configured feature gates.
func (e *Env) Features() interpreter.FeatureSet {
	return e.features
}
