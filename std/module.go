/*
Package std implements Mrya's native modules and global builtins (spec §4.6
Native modules, §7 Domain stack). Each module is a plain *values.Module
populated with *values.NativeCallable entries; ModuleBuilder is the
registration helper that replaces the teacher's std.Builtin/std.Package
slice-and-init() pattern, since that pattern is built on the GoMixObject
type system this package no longer uses — the shape (a declarative list of
name -> callback pairs assembled into a registry) is kept, only the
concrete value types underneath changed.
*/
package std

import "github.com/mrya-lang/mrya/values"

// ModuleBuilder assembles a native module's member table.
type ModuleBuilder struct {
	mod *values.Module
}

// NewModule starts a module builder under the given display name.
func NewModule(name string) *ModuleBuilder {
	b := &ModuleBuilder{mod: values.NewModule(name)}
	b.mod.Native = true
	return b
}

// Func registers a plain host function taking exactly minArity or more
// fixed arguments.
func (b *ModuleBuilder) Func(name string, minArity int, fn values.NativeFunc) *ModuleBuilder {
	b.mod.Members[name] = &values.NativeCallable{Name: name, Conv: values.ConventionPure, Fn: fn, MinArity: minArity}
	return b
}

// Variadic registers a host function accepting any number of trailing
// arguments beyond minArity.
func (b *ModuleBuilder) Variadic(name string, minArity int, fn values.NativeFunc) *ModuleBuilder {
	b.mod.Members[name] = &values.NativeCallable{Name: name, Conv: values.ConventionPure, Fn: fn, MinArity: minArity, Variadic: true}
	return b
}

// Aware registers a host function that needs to call back into the running
// interpreter (spec §4.6) — the evaluator injects the *eval.InterpHandle as
// args[0] before fn ever runs.
func (b *ModuleBuilder) Aware(name string, minArity int, fn values.NativeFunc) *ModuleBuilder {
	b.mod.Members[name] = &values.NativeCallable{Name: name, Conv: values.ConventionInterpreterAware, Fn: fn, MinArity: minArity}
	return b
}

// Const registers a plain value (a numeric constant, a config string) under
// name rather than a callable.
func (b *ModuleBuilder) Const(name string, v values.Value) *ModuleBuilder {
	b.mod.Members[name] = v
	return b
}

// Build returns the finished module.
func (b *ModuleBuilder) Build() *values.Module { return b.mod }
