// Package commands implements the mapi-tag CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/outlook-mapi/mapi-go/pkg/proptag"
)

// ErrUsage is returned when a command gets the wrong arguments.
var ErrUsage = errors.New("usage")

// ErrUnknownCommand is returned by Dispatch for an unrecognized command.
var ErrUnknownCommand = errors.New("unknown command")

// Names lists the commands Dispatch understands.
var Names = []string{"decode", "encode", "lookup", "types"}

// Dispatch runs one command by name with its arguments.
func Dispatch(w io.Writer, cmd string, args []string) error {
	switch strings.ToLower(cmd) {
	case "decode", "d":
		if len(args) != 1 {
			return fmt.Errorf("%w: decode <tag|name>", ErrUsage)
		}
		return Decode(w, args[0])
	case "encode", "e":
		if len(args) != 2 {
			return fmt.Errorf("%w: encode <id> <type>", ErrUsage)
		}
		return Encode(w, args[0], args[1])
	case "lookup", "l":
		if len(args) > 1 {
			return fmt.Errorf("%w: lookup [substring]", ErrUsage)
		}
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		return Lookup(w, pattern)
	case "types", "t":
		Types(w)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// Decode parses a tag given as a number or catalog name and prints its parts.
func Decode(w io.Writer, arg string) error {
	tag, err := proptag.Parse(arg)
	if err != nil {
		return err
	}
	describe(w, tag)
	return nil
}

// Encode builds a tag from an ID and a type name or code.
func Encode(w io.Writer, idArg, typeArg string) error {
	id, err := strconv.ParseUint(strings.TrimSpace(idArg), 0, 16)
	if err != nil {
		return fmt.Errorf("invalid property ID %q: %w", idArg, err)
	}
	pt, err := proptag.ParsePropertyType(typeArg)
	if err != nil {
		return err
	}
	describe(w, proptag.FromParts(proptag.PropertyID(id), pt))
	return nil
}

func describe(w io.Writer, tag proptag.PropTag) {
	fmt.Fprintf(w, "Tag:   %s\n", tag.Hex())
	if name, ok := proptag.NameOf(tag); ok {
		fmt.Fprintf(w, "Name:  %s\n", name)
	}
	fmt.Fprintf(w, "ID:    0x%04X (%s)\n", uint16(tag.ID()), tag.ID().Range())
	pt := tag.Type()
	fmt.Fprintf(w, "Type:  %s (0x%04X)\n", pt, uint16(pt))

	var flags []string
	switch {
	case tag.IsNull():
		flags = append(flags, "null")
	case tag.IsObject():
		flags = append(flags, "object")
	}
	if pt.IsMultiValued() {
		flags = append(flags, "multi-valued")
	}
	if pt.IsInstance() {
		flags = append(flags, "instance")
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, "Flags: %s\n", strings.Join(flags, ", "))
	}
}

// Lookup lists catalog entries whose name contains pattern (case-insensitive).
// An empty pattern lists the whole catalog.
func Lookup(w io.Writer, pattern string) error {
	catalog, err := proptag.DefaultCatalog()
	if err != nil {
		return err
	}
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	n := 0
	for _, e := range catalog.Entries() {
		if pattern != "" && !strings.Contains(e.Name, pattern) {
			continue
		}
		fmt.Fprintf(w, "%s  %-40s %s\n", e.Tag.Hex(), e.Name, e.Tag.Type())
		n++
	}
	if n == 0 {
		return fmt.Errorf("%w: no tag matches %q", proptag.ErrUnknownTagName, pattern)
	}
	return nil
}

// Types prints the property type taxonomy.
func Types(w io.Writer) {
	for _, t := range proptag.Types() {
		marker := ""
		switch {
		case t.IsNull():
			marker = "  (no value)"
		case t.IsObject():
			marker = "  (object reference)"
		}
		fmt.Fprintf(w, "0x%04X  %s%s\n", uint16(t), t, marker)
	}
}
