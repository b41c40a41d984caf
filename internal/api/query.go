package api

import (
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
)

// listState собирает состояние списка из параметров запроса:
// size, sort, dir, search, page. Недопустимые значения игнорируются,
// страница за пределами диапазона не выбирается.
func (s *Service) listState(args *fasthttp.Args, records []dto.Employee) listview.State {
	st := listview.DefaultState()

	if size, err := args.GetUint("size"); err == nil {
		st = st.WithPageSize(size)
	}

	if args.Has("sort") {
		st = st.WithSort(string(args.Peek("sort")), listview.ParseDirection(string(args.Peek("dir"))))
	}

	st = st.WithSearch(strings.TrimSpace(string(args.Peek("search"))))

	if page, err := args.GetUint("page"); err == nil {
		st = st.GoTo(page, s.engine.Count(records, st.Search))
	}

	return st
}

func draftFromForm(ctx *fasthttp.RequestCtx) dto.EmployeeDraft {
	form := func(key string) string {
		return string(ctx.FormValue(key))
	}

	return dto.EmployeeDraft{
		FirstName:   form(dto.FieldFirstName),
		LastName:    form(dto.FieldLastName),
		DateOfBirth: form(dto.FieldDateOfBirth),
		StartDate:   form(dto.FieldStartDate),
		Street:      form(dto.FieldStreet),
		City:        form(dto.FieldCity),
		State:       form(dto.FieldState),
		ZipCode:     form(dto.FieldZipCode),
		Department:  form(dto.FieldDepartment),
	}
}

func trimDraft(d dto.EmployeeDraft) dto.EmployeeDraft {
	return dto.EmployeeDraft{
		FirstName:   strings.TrimSpace(d.FirstName),
		LastName:    strings.TrimSpace(d.LastName),
		DateOfBirth: strings.TrimSpace(d.DateOfBirth),
		StartDate:   strings.TrimSpace(d.StartDate),
		Street:      strings.TrimSpace(d.Street),
		City:        strings.TrimSpace(d.City),
		State:       strings.TrimSpace(d.State),
		ZipCode:     strings.TrimSpace(d.ZipCode),
		Department:  strings.TrimSpace(d.Department),
	}
}
