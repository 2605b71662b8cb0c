package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/valpere/gemtran/internal/languages"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type languageOption struct {
	Name     string
	Tag      string
	Selected bool
}

type pageView struct {
	PageState
	Languages []languageOption
	ResultTag string
}

// Render writes the page for s. It reads nothing but s and the supported
// language set.
func Render(w io.Writer, s PageState) error {
	view := pageView{PageState: s}
	for _, l := range languages.All() {
		opt := languageOption{Name: l.Name, Tag: l.Tag.String(), Selected: l.Name == s.TargetLanguage}
		if opt.Selected {
			view.ResultTag = opt.Tag
		}
		view.Languages = append(view.Languages, opt)
	}
	return pageTemplate.Execute(w, view)
}
