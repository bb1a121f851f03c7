package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;margin-bottom:1.5rem;min-width:28rem}
th,td{border-bottom:1px solid #ddd;padding:.3rem .8rem;text-align:left}
td.num{text-align:right;font-variant-numeric:tabular-nums}
.na{color:#999}`

// Page renders the full HTML report.
func Page(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"/><title>%s</title><style>%s</style></head><body>`,
			templ.EscapeString(doc.Title), pageStyle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<h1>%s</h1><p>Run <code>%s</code> generated %s</p>`,
			templ.EscapeString(doc.Title),
			templ.EscapeString(doc.RunID),
			templ.EscapeString(doc.GeneratedAt.Format("2006-01-02 15:04:05 MST"))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="overall">Overall Accuracy: <strong>%s</strong> (%s)</p>`,
			templ.EscapeString(doc.Overall.Display), templ.EscapeString(doc.Overall.Counts())); err != nil {
			return err
		}
		for _, section := range doc.Sections() {
			if err := SectionTable(section).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// SectionTable renders one dimension as an HTML table.
func SectionTable(section Section) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<h2>%s</h2><table data-dimension="%s"><thead><tr><th>Value</th><th>Accuracy</th><th>Correct</th><th>Total</th></tr></thead><tbody>`,
			templ.EscapeString(section.Title), templ.EscapeString(string(section.Dimension)))
		for _, entry := range section.Entries {
			class := "num"
			if !entry.Accuracy.Valid() {
				class = "num na"
			}
			fmt.Fprintf(&b, `<tr><td>%s</td><td class="%s">%s</td><td class="num">%d</td><td class="num">%d</td></tr>`,
				templ.EscapeString(entry.Label()), class, templ.EscapeString(entry.Display), entry.Correct, entry.Total)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, doc Document) (string, error) {
	var builder strings.Builder
	if err := Page(doc).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
