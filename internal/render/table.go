package render

import (
	"fmt"

	"camscrape/lib/scrapers/cambridge"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders an Entry for reading in a terminal.
func Table(e cambridge.Entry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"field", "value"})

	t.AppendRow(table.Row{"word", e.Word})
	if e.URL != "" {
		t.AppendRow(table.Row{"url", e.URL})
	}
	for _, region := range []cambridge.Region{cambridge.RegionAmE, cambridge.RegionBrE} {
		if pron, ok := e.Pronunciation[region]; ok {
			t.AppendRow(table.Row{fmt.Sprintf("pron %s", region), pron})
		}
		if audio, ok := e.Audio[region]; ok {
			t.AppendRow(table.Row{fmt.Sprintf("audio %s", region), audio})
		}
	}
	if e.Image != "" {
		t.AppendRow(table.Row{"image", e.Image})
	}
	if e.Thumb != "" {
		t.AppendRow(table.Row{"thumb", e.Thumb})
	}

	t.AppendSeparator()
	for i, definition := range e.Definitions {
		t.AppendRow(table.Row{fmt.Sprintf("def %02d", i+1), definition})
	}

	return t.Render()
}
