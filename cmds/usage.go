package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	printCommands(e.Writer, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		line := strings.Repeat("  ", depth) + strings.Join(append([]string{name}, command.Aliases...), ", ")
		if command.Func.IsValid() {
			for i := range command.Func.Type().NumIn() {
				line += fmt.Sprintf(" <%v>", command.Func.Type().In(i))
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
