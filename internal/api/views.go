package api

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

//go:embed templates/*.html
var templatesFS embed.FS

type view struct {
	name string
	tmpl *template.Template
}

// render выполняет шаблон целиком в буфер, чтобы ошибка не оставила
// частично записанный ответ.
func (v *view) render(w io.Writer, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

type views struct {
	create   *view
	list     *view
	notFound *view
}

func mustLoadViews() *views {
	return &views{
		create:   mustParseView("create.html"),
		list:     mustParseView("list.html"),
		notFound: mustParseView("not_found.html"),
	}
}

func mustParseView(name string) *view {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
	return &view{name: name, tmpl: tmpl}
}

type createPageData struct {
	Title       string
	States      []dto.State
	Departments []dto.Department
	Draft       dto.EmployeeDraft
	Errors      validation.Errors
	Created     *dto.Employee
}

type headerLink struct {
	Label string
	Href  string
	Class string
}

type pageLink struct {
	Number   int
	Href     string
	Active   bool
	Ellipsis bool
}

type listPageData struct {
	Title     string
	Search    string
	SortKey   string
	Direction string
	PageSize  int
	PageSizes []int
	Headers   []headerLink
	Rows      [][]string
	Colspan   int
	Summary   string
	Pages     []pageLink
	PrevHref  string
	NextHref  string
}

type notFoundPageData struct {
	Title string
	Path  string
}

func listHref(st listview.State) string {
	return "/employees?" + st.Query().Encode()
}
