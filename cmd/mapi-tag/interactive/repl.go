// Package interactive provides the mapi-tag read-eval-print loop.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/outlook-mapi/mapi-go/cmd/mapi-tag/commands"
)

const helpText = `Commands:
  decode <tag|name>    Split a property tag into ID and type (alias: d)
  encode <id> <type>   Build a tag from an ID and a type (alias: e)
  lookup [substring]   Search the tag catalog (alias: l)
  types                List the property type taxonomy (alias: t)
  help                 Show this help (alias: ?)
  exit                 Leave (alias: quit, q)
`

// REPL runs mapi-tag commands from a readline prompt.
type REPL struct {
	rl *readline.Instance
}

// New creates a REPL with history and tab completion of command names.
func New() (*REPL, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands.Names)+2)
	for _, name := range commands.Names {
		items = append(items, readline.PcItem(name))
	}
	items = append(items, readline.PcItem("help"), readline.PcItem("exit"))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mapi-tag> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &REPL{rl: rl}, nil
}

// Run reads commands until exit or EOF.
func (r *REPL) Run() {
	defer r.rl.Close()

	out := r.rl.Stdout()
	fmt.Fprint(out, helpText)
	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		if HandleLine(out, line) {
			return
		}
	}
}

// HandleLine executes one input line and reports whether the user asked
// to leave.
func HandleLine(w io.Writer, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	switch cmd := strings.ToLower(parts[0]); cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		fmt.Fprint(w, helpText)
	default:
		if err := commands.Dispatch(w, cmd, parts[1:]); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
	return false
}
