package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

const prefix = "cmd "

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state
// and positional arguments (FlagSet.Args()).
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting or printing usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token after "cmd" (e.g. "grid").
// fs is that command's FlagSet (nil for none); run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// RegisterToggle adds a command taking --show or --hide, e.g. "cmd grid --hide".
func (r *Registry) RegisterToggle(name, what string, set func(on bool) error) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show "+what)
	hide := fs.Bool("hide", false, "hide "+what)
	r.Register(name, "--show|--hide  "+what, fs, func() error {
		defer func() { *show, *hide = false, false }()
		if *show == *hide {
			return fmt.Errorf("%s: pass exactly one of --show or --hide", name)
		}
		return set(*show)
	})
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Help returns one "name usage" line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, name := range r.Names() {
		out = append(out, strings.TrimSpace(name+" "+r.cmds[name].Usage))
	}
	return out
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

// ErrMissingSubcommand is returned by Execute for a bare "cmd".
var ErrMissingSubcommand = errors.New("missing subcommand")

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingSubcommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	rest := args[1:]
	if !hasFlags(cmd.FlagSet) {
		// Positional-only: "-5" is a number, not a flag.
		rest = append([]string{"--"}, rest...)
	}
	if err := cmd.FlagSet.Parse(rest); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}

func hasFlags(fs *flag.FlagSet) bool {
	n := 0
	fs.VisitAll(func(*flag.Flag) { n++ })
	return n > 0
}
