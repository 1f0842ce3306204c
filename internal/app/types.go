package app

import (
	"context"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// EnvOverride is a single environment change requested by an Invocation.
// A Removed override deletes the variable; otherwise Value replaces it.
type EnvOverride struct {
	Value   string
	Removed bool
}

// SetEnv returns an override that sets a variable.
func SetEnv(value string) EnvOverride { return EnvOverride{Value: value} }

// UnsetEnv returns an override that removes a variable.
func UnsetEnv() EnvOverride { return EnvOverride{Removed: true} }

// Invocation is a request to run a program before association correction.
// It is never mutated by the resolver.
type Invocation struct {
	Program string
	Args    []string
	// Dir overrides the working directory. Empty means inherit from the caller.
	Dir string
	Env map[string]EnvOverride
}

// NewInvocation creates an Invocation for program with args.
func NewInvocation(program string, args ...string) Invocation {
	return Invocation{Program: program, Args: args}
}

// ResolvedCommand is the fully expanded command ready for launch.
type ResolvedCommand struct {
	Program string
	Args    []string
	Dir     string
	Env     map[string]EnvOverride

	// Extension and Template record how the command was derived.
	Extension string
	Template  string
}

// Argv returns the program followed by its arguments.
func (r *ResolvedCommand) Argv() []string {
	argv := make([]string, 0, len(r.Args)+1)
	argv = append(argv, r.Program)
	return append(argv, r.Args...)
}

// Environ applies the environment overrides to base, a list of KEY=VALUE
// entries. Variables not mentioned in the overrides keep their position and value.
func (r *ResolvedCommand) Environ(base []string) []string {
	env := make([]string, 0, len(base)+len(r.Env))
	seen := make(map[string]bool, len(r.Env))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		override, ok := lookupOverride(r.Env, key)
		if !ok {
			env = append(env, kv)
			continue
		}
		seen[envKey(override.key)] = true
		if !override.Removed {
			env = append(env, key+"="+override.Value)
		}
	}

	// Variables set by the overrides but absent from base, in stable order.
	for _, key := range slices.Sorted(maps.Keys(r.Env)) {
		o := r.Env[key]
		if seen[envKey(key)] || o.Removed {
			continue
		}
		seen[envKey(key)] = true
		env = append(env, key+"="+o.Value)
	}
	return env
}

// Cmd builds an exec.Cmd for the resolved command. The environment is the
// current process environment with the overrides applied.
func (r *ResolvedCommand) Cmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Program, r.Args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = r.Environ(os.Environ())
	}
	return cmd
}

// String renders the command as a single shell-quoted line for display.
func (r *ResolvedCommand) String() string {
	argv := r.Argv()
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			// Not representable in bash (e.g. a NUL byte); show it Go-quoted.
			q = strconv.Quote(arg)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
