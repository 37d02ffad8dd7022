package main

import (
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"github.com/outlook-mapi/mapi-go/pkg/proptag"
)

var funcMap = template.FuncMap{
	"hex32": func(t proptag.PropTag) string { return fmt.Sprintf("0x%08X", t.Raw()) },
}

const tagsTmpl = `// Code generated by mapi-taggen from {{.Source}}. DO NOT EDIT.

package proptag

// Well-known property tags.
const (
{{- range $i, $e := .Entries}}
{{- if $i}}
{{end}}
	// {{$e.GoName}} is {{$e.Name}}: {{$e.Description}}.
	{{$e.GoName}} PropTag = {{hex32 $e.Tag}}
{{- end}}
)
`

var tagsTemplate = template.Must(template.New("tags").Funcs(funcMap).Parse(tagsTmpl))

type tagsData struct {
	Source  string
	Entries []proptag.CatalogEntry
}

// Generate renders the constant file for a YAML catalog. Every entry needs
// a unique exported Go name and a description.
func Generate(catalogYAML []byte, source string) (string, error) {
	c, err := proptag.ParseCatalog(catalogYAML)
	if err != nil {
		return "", err
	}

	entries := c.Entries()
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		if !token.IsIdentifier(e.GoName) || !token.IsExported(e.GoName) {
			return "", fmt.Errorf("tag %s: go name %q is not an exported identifier", e.Name, e.GoName)
		}
		if other, dup := seen[e.GoName]; dup {
			return "", fmt.Errorf("tag %s: go name %s already used by %s", e.Name, e.GoName, other)
		}
		seen[e.GoName] = e.Name
		if strings.TrimSpace(e.Description) == "" {
			return "", fmt.Errorf("tag %s: missing description", e.Name)
		}
	}

	var b strings.Builder
	if err := tagsTemplate.Execute(&b, tagsData{Source: source, Entries: entries}); err != nil {
		return "", fmt.Errorf("template tags: %w", err)
	}
	return b.String(), nil
}
