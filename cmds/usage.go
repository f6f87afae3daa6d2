package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeUsage(tw, p.commands, 0)
	tw.Flush()
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	names := make([]string, 0, len(commands))
	for name, command := range commands {
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		label := name
		if len(command.Aliases) > 0 {
			label += ", " + strings.Join(command.Aliases, ", ")
		}
		fmt.Fprintf(w, "%s%s\t%s\n", indent, label, command.Description)
		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, depth+1)
		}
	}
}
