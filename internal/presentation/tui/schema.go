package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/sieve/pkg/schema"
)

// SchemaMarkdown renders a schema as a markdown document for terminal
// display via the glamour renderer.
func SchemaMarkdown(s schema.Schema) string {
	var b strings.Builder
	b.WriteString("# Index Schema\n\n")
	b.WriteString("| Field | Type |\n|---|---|\n")
	writeFields(&b, s, "")
	return b.String()
}

func writeFields(b *strings.Builder, s schema.Schema, prefix string) {
	for _, f := range s {
		name := f.Name
		if prefix != "" {
			name = prefix + "." + f.Name
		}
		if obj, ok := f.Type.(*schema.ObjectType); ok {
			fmt.Fprintf(b, "| `%s` | object |\n", name)
			writeFields(b, obj.Schema, name)
			continue
		}
		fmt.Fprintf(b, "| `%s` | `%s` |\n", name, f.Type.Name())
	}
}
