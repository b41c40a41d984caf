package api

import (
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/metrics"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

func (s *Service) index(ctx *fasthttp.RequestCtx) {
	ctx.Redirect("/employees/create", fasthttp.StatusFound)
}

func (s *Service) createEmployeePage(ctx *fasthttp.RequestCtx) {
	data := s.createPageData(dto.EmployeeDraft{}, nil)

	if id := string(ctx.QueryArgs().Peek("created")); id != "" {
		if e, err := s.employees.Get(id); err == nil {
			data.Created = e
		}
	}

	writeHTML(ctx, fasthttp.StatusOK, s.views.create, data)
}

// submitEmployeeForm: при ошибках форма показывается снова с введёнными
// значениями и сообщениями у полей; при успехе — redirect с подтверждением.
func (s *Service) submitEmployeeForm(ctx *fasthttp.RequestCtx) {
	draft := draftFromForm(ctx)

	employee, errs := s.create(ctx, draft)
	if errs != nil {
		writeHTML(ctx, fasthttp.StatusBadRequest, s.views.create, s.createPageData(draft, errs))
		return
	}

	ctx.Redirect("/employees/create?created="+employee.ID, fasthttp.StatusSeeOther)
}

func (s *Service) createPageData(d dto.EmployeeDraft, errs validation.Errors) createPageData {
	return createPageData{
		Title:       "Create employee",
		States:      s.ref.States,
		Departments: s.ref.Departments,
		Draft:       d,
		Errors:      errs,
	}
}

func (s *Service) listEmployeesPage(ctx *fasthttp.RequestCtx) {
	records := s.employees.List()
	page := s.engine.Apply(records, s.listState(ctx.QueryArgs(), records))
	metrics.ListViews.WithLabelValues("html").Inc()

	writeHTML(ctx, fasthttp.StatusOK, s.views.list, s.listPageData(page))
}

func (s *Service) listPageData(page listview.Page) listPageData {
	st := page.State

	data := listPageData{
		Title:     "Current employees",
		Search:    st.Search,
		SortKey:   st.SortKey,
		Direction: string(st.Direction),
		PageSize:  st.PageSize,
		PageSizes: listview.PageSizes,
		Colspan:   len(listview.Columns),
		Summary:   page.Summary(),
	}

	for _, c := range listview.Columns {
		h := headerLink{Label: c.Label, Href: listHref(st.ToggleSort(c.Key))}
		if st.SortKey == c.Key {
			h.Class = "active " + string(st.Direction)
		}
		data.Headers = append(data.Headers, h)
	}

	for _, e := range page.Items {
		row := make([]string, 0, len(listview.Columns))
		for _, c := range listview.Columns {
			row = append(row, s.engine.Display(c, e))
		}
		data.Rows = append(data.Rows, row)
	}

	for _, item := range page.Numbers() {
		if item.Ellipsis {
			data.Pages = append(data.Pages, pageLink{Ellipsis: true})
			continue
		}
		data.Pages = append(data.Pages, pageLink{
			Number: item.Number,
			Href:   listHref(st.GoTo(item.Number, page.Total)),
			Active: item.Number == st.Page,
		})
	}

	if page.HasPrev() {
		data.PrevHref = listHref(st.GoTo(st.Page-1, page.Total))
	}
	if page.HasNext() {
		data.NextHref = listHref(st.GoTo(st.Page+1, page.Total))
	}

	return data
}

func (s *Service) notFoundPage(ctx *fasthttp.RequestCtx) {
	writeHTML(ctx, fasthttp.StatusNotFound, s.views.notFound, notFoundPageData{
		Title: "Page not found",
		Path:  string(ctx.Path()),
	})
}
