package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer owns the embedded page templates. All user-supplied text flows
// through html/template contextual escaping; nothing is marked safe.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	tmpl := template.New("").Funcs(template.FuncMap{
		"dict": dictFunc,
	})
	return &Renderer{
		tmpl: template.Must(tmpl.ParseFS(templatesFS, "templates/*.html")),
	}
}

// dictFunc builds a map from key/value pairs so nested templates can receive
// more than one argument.
func dictFunc(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict needs an even number of arguments")
	}
	d := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		d[key] = values[i+1]
	}
	return d, nil
}

func (r *Renderer) Render(ctx *fiber.Ctx, name string, data interface{}) error {
	ctx.Type("html", "utf-8")
	return r.tmpl.ExecuteTemplate(ctx.Response().BodyWriter(), name, data)
}

// Execute renders into any writer. Used by tests to assert on markup.
func (r *Renderer) Execute(w io.Writer, name string, data interface{}) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
