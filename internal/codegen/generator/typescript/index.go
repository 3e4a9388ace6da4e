package typescript

import "text/template"

// IndexFile re-exports every entity module.
const IndexFile = "index.ts"

const indexTemplate = `{{writeFileHeaderTS}}
{{- range .}}
export * from './{{.ClassName}}';
{{- end}}
`

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
}).Parse(indexTemplate))
