package templates

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"

	"github.com/zotcurve/internal/charts"
	"github.com/zotcurve/internal/grades"
	"github.com/zotcurve/internal/query"
	"github.com/zotcurve/internal/statistics"
)

//go:embed *.gotmpl
var embedFS embed.FS

const (
	layoutTemplate  = "_layout.html.gotmpl"
	searchTemplate  = "search.html.gotmpl"
	classesTemplate = "classes.html.gotmpl"
)

type Renderer interface {
	RenderSearchPage(io.Writer, SearchData) error
	RenderClassesPage(io.Writer, ClassesData) error
}

type SearchData struct {
	Query       query.Query
	Years       []string
	Terms       []grades.Term
	Departments []string
	// Error is shown above the form when the last search was rejected.
	Error string
}

type Row struct {
	ID           int
	Term         string
	Department   string
	CourseNumber string
	CourseCode   string
	Title        string
	Instructor   string
	Color        string
}

type ClassesData struct {
	Query       query.Query
	Rows        []Row
	Instructors []statistics.Instructor
	Chart       *charts.Chart
}

func parsePage(fsys fs.FS, page string) (*template.Template, error) {
	return template.New(layoutTemplate).ParseFS(fsys, layoutTemplate, page)
}

func mustParsePage(fsys fs.FS, page string) *template.Template {
	return template.Must(parsePage(fsys, page))
}

type embedTemplates struct {
	search  *template.Template
	classes *template.Template
}

func NewEmbedTemplates() Renderer {
	return &embedTemplates{
		search:  mustParsePage(embedFS, searchTemplate),
		classes: mustParsePage(embedFS, classesTemplate),
	}
}

func (t *embedTemplates) RenderSearchPage(w io.Writer, data SearchData) error {
	return t.search.Execute(w, data)
}

func (t *embedTemplates) RenderClassesPage(w io.Writer, data ClassesData) error {
	return t.classes.Execute(w, data)
}

// filesystemTemplates parses templates on every render, so edits show up
// without a restart.
type filesystemTemplates struct {
	fsys fs.FS
}

func NewFilesystemTemplates(path string) Renderer {
	return &filesystemTemplates{
		fsys: os.DirFS(path),
	}
}

func (t *filesystemTemplates) RenderSearchPage(w io.Writer, data SearchData) error {
	tmpl, err := parsePage(t.fsys, searchTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

func (t *filesystemTemplates) RenderClassesPage(w io.Writer, data ClassesData) error {
	tmpl, err := parsePage(t.fsys, classesTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}
