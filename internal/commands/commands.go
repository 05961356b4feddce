package commands

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand. Its flags are defined anew on every execution by setup,
// which returns the function to run once they are parsed.
type Command struct {
	Name  string
	setup func(fs *flag.FlagSet) func() error
}

// Registry holds subcommands by name. Add commands with RegisterFunc; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// RegisterFunc adds a subcommand whose flags are defined anew for each execution, so a
// flag given on one line never leaks into the next. setup defines the flags on fs and
// returns the function to run once they are parsed.
func (r *Registry) RegisterFunc(name string, setup func(fs *flag.FlagSet) func() error) {
	r.cmds[name] = &Command{Name: name, setup: setup}
}

// Names returns the registered subcommand names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse interprets line as a terminal line. If line starts with "cmd " (case-sensitive),
// the rest is tokenized by spaces and returned with ok true. Otherwise nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for an unknown command, a parse error, or the command's own error.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	fs := NewFlagSet(name)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	return run()
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting and prints nothing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
