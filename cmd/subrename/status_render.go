package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"subrename/internal/episode"
	"subrename/internal/renamer"
)

const outcomeStatusColumn = 4

var statusColors = map[renamer.Status]text.Colors{
	renamer.StatusRenamed:   {text.FgGreen},
	renamer.StatusUnchanged: {text.FgYellow},
	renamer.StatusFailed:    {text.FgRed},
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// outcomeRow keeps the whole outcome in the status cell; statusTransformer
// renders it.
func outcomeRow(o renamer.Outcome) table.Row {
	return table.Row{o.Episode, o.OldName, o.NewName, o}
}

func statusLabel(o renamer.Outcome) string {
	if o.Err != nil {
		return fmt.Sprintf("%s: %v", o.Status, o.Err)
	}
	return o.Status.String()
}

func statusTransformer(colorize bool) text.Transformer {
	return func(val any) string {
		o, ok := val.(renamer.Outcome)
		if !ok {
			return fmt.Sprint(val)
		}
		if colorize {
			return statusColors[o.Status].Sprint(statusLabel(o))
		}
		return statusLabel(o)
	}
}

func renderOutcomes(outcomes []renamer.Outcome, colorize bool) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Episode", "Subtitle", "Renamed To", "Status"})
	for _, o := range outcomes {
		tw.AppendRow(outcomeRow(o))
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: outcomeStatusColumn, Transformer: statusTransformer(colorize)},
	})
	return tw.Render()
}

func printOutcomes(out io.Writer, outcomes []renamer.Outcome, colorize bool) {
	fmt.Fprintln(out, renderOutcomes(outcomes, colorize))
}

func extractRow(name string) table.Row {
	m, ok := episode.Explain(name)
	if !ok {
		return table.Row{name, "-", "no match"}
	}
	return table.Row{name, m.Number, m.Rule}
}

func renderExtract(names []string) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"File", "Episode", "Rule"})
	for _, name := range names {
		tw.AppendRow(extractRow(name))
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
