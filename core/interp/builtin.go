package interp

import (
	"os"
	"sort"
)

// Builtin is one entry in the static command table. Builtins run inside the
// interpreter because they mutate interpreter-local state.
type Builtin struct {
	Name  string
	Short string

	// run executes the builtin; its result reports whether the session
	// should continue. A nil run reports not-implemented and continues.
	run func(in *Interp, args Command) bool
}

// builtins is the command table. The set is closed; it is consulted by
// Execute and never mutated after init.
var builtins = map[string]Builtin{
	"cd":   {Name: "cd", Short: "Change the working directory.", run: builtinCd},
	"exit": {Name: "exit", Short: "Exit the shell.", run: builtinExit},
}

// IsBuiltin reports whether name is in the command table.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Builtins returns the command table entries sorted by name.
func Builtins() []Builtin {
	var out []Builtin
	for _, b := range builtins {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// builtinCd changes the interpreter's working directory. With no argument
// the destination comes from the user's home directory; failure to resolve
// or enter a directory is reported and never fatal to the session.
func builtinCd(in *Interp, args Command) bool {
	switch len(args) {
	case 1:
		home, err := os.UserHomeDir()
		if err != nil {
			in.reportf("cd: %v", err)
			return true
		}
		args = append(args, home)
		fallthrough
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			in.reportf("cd: %v", err)
		}
	default:
		in.reportf("cd: too many arguments")
	}
	return true
}

// builtinExit stops the session. Trailing arguments are ignored.
func builtinExit(in *Interp, args Command) bool {
	return false
}
