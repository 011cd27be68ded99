package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

var pageTmpl = template.Must(
	template.New("page.html").ParseFS(templatesFS, "templates/*.html"),
)

// StaticFS returns the embedded stylesheet tree, rooted at "static".
func StaticFS() fs.FS {
	return staticFS
}

// render executes the named template into a pooled buffer so a template
// error never leaves a half-written response.
func render(c *fiber.Ctx, name string, data any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := pageTmpl.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.SendString(buf.String())
}
