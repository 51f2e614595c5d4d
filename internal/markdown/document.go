package markdown

import (
	"fmt"
	"html/template"
	"io"
	"maps"
	"slices"

	"github.com/aretw0/chronos/pkg/core"
)

var documentTemplate = template.Must(template.New("notes").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Entries}}<section id="{{.Key}}">
<h2>{{.Key}}</h2>
{{.Body}}</section>
{{end}}</body>
</html>
`))

type documentEntry struct {
	Key  string
	Body template.HTML
}

// WriteDocument renders every note as a section of a standalone HTML page,
// in key order. Keys are escaped; note bodies go through ToHTML.
func WriteDocument(w io.Writer, title string, notes core.Notes) error {
	data := struct {
		Title   string
		Entries []documentEntry
	}{Title: title}

	for _, key := range slices.Sorted(maps.Keys(notes)) {
		body, err := ToHTML(notes[key].Content)
		if err != nil {
			return fmt.Errorf("note %s: %w", key, err)
		}
		data.Entries = append(data.Entries, documentEntry{Key: key, Body: template.HTML(body)})
	}
	return documentTemplate.Execute(w, data)
}
