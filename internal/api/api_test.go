package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/reference"
	"github.com/Artexxx/HR-Employees/internal/repository/employees"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

type recordingProducer struct {
	sent []dto.Employee
	err  error
}

func (p *recordingProducer) ProduceEmployeeCreated(_ context.Context, e dto.Employee) error {
	p.sent = append(p.sent, e)
	return p.err
}

type fixture struct {
	svc      *Service
	repo     *employees.Repository
	producer *recordingProducer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tables, err := reference.Load()
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC) }
	repo := employees.NewRepository(nil, zerolog.Nop())
	producer := &recordingProducer{}

	svc := NewService(ServiceDeps{
		Port:      0,
		Employees: repo,
		Validator: validation.New(tables, now),
		Engine:    listview.NewEngine("1/2/2006"),
		Reference: tables,
		Producer:  producer,
	})

	return &fixture{svc: svc, repo: repo, producer: producer}
}

func (f *fixture) do(method, uri, contentType string, body []byte) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.Header.SetContentType(contentType)
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	f.svc.handler(ctx)
	return ctx
}

func validJSON() dto.EmployeeDraft {
	return dto.EmployeeDraft{
		FirstName:   "Ann",
		LastName:    "Smith",
		DateOfBirth: "1990-05-10",
		StartDate:   "2015-09-01",
		Street:      "12 Main St",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62701",
		Department:  "Sales",
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestCreateEmployee_JSON(t *testing.T) {
	f := newFixture(t)

	draft := validJSON()
	draft.FirstName = "  Ann  "
	ctx := f.do(fasthttp.MethodPost, "/api/employees", "application/json", mustJSON(t, draft))

	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())

	var got dto.Employee
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, 1, len(f.repo.List()))
	require.Len(t, f.producer.sent, 1)
	assert.Equal(t, got.ID, f.producer.sent[0].ID)
}

func TestCreateEmployee_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	draft := validJSON()
	draft.City = ""
	draft.StartDate = "2006-05-09"
	ctx := f.do(fasthttp.MethodPost, "/api/employees", "application/json", mustJSON(t, draft))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp validationErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, validation.Errors{
		dto.FieldCity:      "City is required",
		dto.FieldStartDate: "Too young to start",
	}, resp.Errors)
	assert.Empty(t, f.repo.List())
	assert.Empty(t, f.producer.sent)
}

func TestCreateEmployee_InvalidJSON(t *testing.T) {
	f := newFixture(t)

	ctx := f.do(fasthttp.MethodPost, "/api/employees", "application/json", []byte(`{"firstName":`))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestCreateEmployee_ProducerErrorIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.producer.err = errors.New("broker down")

	ctx := f.do(fasthttp.MethodPost, "/api/employees", "application/json", mustJSON(t, validJSON()))

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Len(t, f.repo.List(), 1)
}

func TestGetEmployee(t *testing.T) {
	f := newFixture(t)
	created := f.repo.Create(context.Background(), validJSON())

	ctx := f.do(fasthttp.MethodGet, "/api/employees/"+created.ID, "", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var got dto.Employee
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	assert.Equal(t, created, got)

	ctx = f.do(fasthttp.MethodGet, "/api/employees/missing", "", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func seed(f *fixture, n int) {
	for i := 0; i < n; i++ {
		d := validJSON()
		d.FirstName = fmt.Sprintf("Name%03d", i+1)
		if i == 0 {
			d.Department = "Legal"
		}
		f.repo.Create(context.Background(), d)
	}
}

func TestListEmployees_JSON(t *testing.T) {
	f := newFixture(t)
	seed(f, 30)

	ctx := f.do(fasthttp.MethodGet, "/api/employees?size=25&page=2&sort=firstName&dir=desc", "", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp listResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 30, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 25, resp.PageSize)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 5)
	assert.Equal(t, "Name005", resp.Items[0].FirstName)
	assert.Equal(t, "Name001", resp.Items[4].FirstName)
	assert.Equal(t, "Showing 26 to 30 of 30 entries", resp.Summary)
}

func TestListEmployees_OutOfRangePageIgnored(t *testing.T) {
	f := newFixture(t)
	seed(f, 12)

	ctx := f.do(fasthttp.MethodGet, "/api/employees?page=7", "", nil)

	var resp listResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.Items, 10)
}

func TestListEmployees_Search(t *testing.T) {
	f := newFixture(t)
	seed(f, 12)

	ctx := f.do(fasthttp.MethodGet, "/api/employees?search=LEGAL", "", nil)

	var resp listResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Name001", resp.Items[0].FirstName)

	ctx = f.do(fasthttp.MethodGet, "/api/employees?search=nobody-here", "", nil)
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Items)
}

func TestSubmitEmployeeForm(t *testing.T) {
	f := newFixture(t)

	form := url.Values{}
	for k, v := range map[string]string{
		dto.FieldFirstName:   "Ann",
		dto.FieldLastName:    "Smith",
		dto.FieldDateOfBirth: "1990-05-10",
		dto.FieldStartDate:   "2015-09-01",
		dto.FieldStreet:      "12 Main St",
		dto.FieldCity:        "Springfield",
		dto.FieldState:       "IL",
		dto.FieldZipCode:     "62701",
		dto.FieldDepartment:  "Sales",
	} {
		form.Set(k, v)
	}

	ctx := f.do(fasthttp.MethodPost, "/employees/create", "application/x-www-form-urlencoded", []byte(form.Encode()))

	require.Equal(t, fasthttp.StatusSeeOther, ctx.Response.StatusCode())
	list := f.repo.List()
	require.Len(t, list, 1)
	assert.Contains(t, string(ctx.Response.Header.Peek("Location")), "/employees/create?created="+list[0].ID)

	page := f.do(fasthttp.MethodGet, "/employees/create?created="+list[0].ID, "", nil)
	assert.Contains(t, string(page.Response.Body()), "Employee created!")
}

func TestSubmitEmployeeForm_InlineErrors(t *testing.T) {
	f := newFixture(t)

	form := url.Values{}
	form.Set(dto.FieldFirstName, "Ann")
	form.Set(dto.FieldDateOfBirth, "2015-01-01")

	ctx := f.do(fasthttp.MethodPost, "/employees/create", "application/x-www-form-urlencoded", []byte(form.Encode()))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "Last name is required")
	assert.Contains(t, body, "A bit too young to be an employee")
	assert.Contains(t, body, `value="Ann"`)
	assert.NotContains(t, body, "First name is required")
	assert.Empty(t, f.repo.List())
}

func TestListEmployeesPage(t *testing.T) {
	f := newFixture(t)
	seed(f, 100)

	ctx := f.do(fasthttp.MethodGet, "/employees?page=3", "", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := string(ctx.Response.Body())
	assert.Contains(t, body, "Showing 21 to 30 of 100 entries")
	assert.Contains(t, body, "Name021")
	assert.Contains(t, body, "5/10/1990")
	assert.Contains(t, body, `class="active asc"`)
	assert.Contains(t, body, `<span class="ellipsis">...</span>`)
}

func TestListEmployeesPage_Empty(t *testing.T) {
	f := newFixture(t)

	ctx := f.do(fasthttp.MethodGet, "/employees", "", nil)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "No employees found")
}

func TestListPageData_Links(t *testing.T) {
	f := newFixture(t)
	seed(f, 60)

	records := f.repo.List()
	st := listview.DefaultState().GoTo(3, len(records))
	data := f.svc.listPageData(f.svc.engine.Apply(records, st))

	// повторный клик по активной колонке меняет направление
	assert.Contains(t, data.Headers[0].Href, "dir=desc")
	assert.Contains(t, data.Headers[1].Href, "sort=lastName")
	assert.Contains(t, data.Headers[1].Href, "dir=asc")
	assert.Contains(t, data.PrevHref, "page=2")
	assert.Contains(t, data.NextHref, "page=4")
	assert.Len(t, data.Rows, 10)
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)

	ctx := f.do(fasthttp.MethodGet, "/no/such/page", "", nil)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.True(t, bytes.Contains(ctx.Response.Body(), []byte("/no/such/page")))
}

func TestIndexRedirects(t *testing.T) {
	f := newFixture(t)

	ctx := f.do(fasthttp.MethodGet, "/", "", nil)

	assert.Equal(t, fasthttp.StatusFound, ctx.Response.StatusCode())
	assert.True(t, strings.HasSuffix(string(ctx.Response.Header.Peek("Location")), "/employees/create"))
}

func TestReferenceAndHealth(t *testing.T) {
	f := newFixture(t)

	ctx := f.do(fasthttp.MethodGet, "/api/reference/departments", "", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var deps []dto.Department
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &deps))
	assert.Len(t, deps, 5)

	ctx = f.do(fasthttp.MethodGet, "/api/reference/states", "", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = f.do(fasthttp.MethodGet, "/health", "", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.NotEmpty(t, ctx.Response.Header.Peek("X-Request-ID"))
}
