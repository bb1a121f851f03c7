package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("=", 80)

// WriteText renders the document as the plain text results block.
func WriteText(w io.Writer, doc Document) error {
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, doc.Title)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Overall Accuracy: %s (%s)\n", doc.Overall.Display, doc.Overall.Counts())
	fmt.Fprintln(&b)
	for _, section := range doc.Sections() {
		fmt.Fprintf(&b, "%s:\n", section.Title)
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "  %s: %s (%s)\n", entry.Label(), entry.Display, entry.Counts())
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, rule)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON renders the document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
