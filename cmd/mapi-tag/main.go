// Command mapi-tag decodes, encodes and looks up MAPI property tags.
//
// Usage:
//
//	mapi-tag <command> [args]
//
// Commands:
//
//	decode <tag|name>    Split a tag into ID and type
//	encode <id> <type>   Build a tag from ID and type
//	lookup [substring]   Search the tag catalog
//	types                List the property type taxonomy
//	interactive          Start an interactive prompt
//
// Examples:
//
//	mapi-tag decode 0x3001001F
//	mapi-tag encode 0x8001 PT_MV_UNICODE
//	mapi-tag lookup attach
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/outlook-mapi/mapi-go/cmd/mapi-tag/commands"
	"github.com/outlook-mapi/mapi-go/cmd/mapi-tag/interactive"
)

const usage = `mapi-tag - MAPI Property Tag Tool

Usage:
  mapi-tag <command> [args]

Commands:
  decode <tag|name>    Split a tag into ID and type
  encode <id> <type>   Build a tag from ID and type
  lookup [substring]   Search the tag catalog
  types                List the property type taxonomy
  interactive          Start an interactive prompt
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	case "interactive", "i":
		repl, err := interactive.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		repl.Run()
		return
	}

	if err := commands.Dispatch(os.Stdout, cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrUsage) || errors.Is(err, commands.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}
