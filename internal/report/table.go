// file: internal/report/table.go
// version: 1.0.0
// guid: 2e7c4a9f-1d6b-4e8a-9c3f-7b5d2e8a4c1f

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/audiobiblio/tagsuggest/internal/suggest"
)

// Render prints one review table per folder: a row per changed field
// per file, current value against suggested. Files without changes get
// a single summary row.
func Render(w io.Writer, fs suggest.FolderSuggestion) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	if !colorEnabled(w) {
		tw.Style().Color = table.ColorOptions{}
	}
	tw.SetTitle("%s  (order: %s)", fs.Folder, fs.OrderSource)
	tw.AppendHeader(table.Row{"File", "Field", "Current", "Suggested"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AlignHeader: text.AlignLeft},
		{Number: 2, AlignHeader: text.AlignLeft},
	})

	for _, file := range fs.Files {
		name := basename(file.Path)
		changed := suggest.ChangedFields(file)
		if len(changed) == 0 {
			tw.AppendRow(table.Row{name, suggest.NoChange, "", ""})
			continue
		}
		for i, field := range changed {
			label := name
			if i > 0 {
				label = ""
			}
			tw.AppendRow(table.Row{label, field, file.Current.Field(field), file.Suggested.Field(field)})
		}
		tw.AppendSeparator()
	}

	tw.Render()
	fmt.Fprintln(w)
}

func basename(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		return path[i+1:]
	}
	return path
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
