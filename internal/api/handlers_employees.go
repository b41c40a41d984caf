package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/metrics"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

type listResponse struct {
	Items      []dto.Employee      `json:"items"`
	Total      int                 `json:"total" example:"42"`
	Page       int                 `json:"page" example:"1"`
	PageSize   int                 `json:"pageSize" example:"10"`
	TotalPages int                 `json:"totalPages" example:"5"`
	Search     string              `json:"search,omitempty" example:"sales"`
	Sort       string              `json:"sort,omitempty" example:"firstName"`
	Direction  string              `json:"direction,omitempty" example:"asc"`
	Summary    string              `json:"summary" example:"Showing 1 to 10 of 42 entries"`
	Pages      []listview.PageItem `json:"pages"`
}

// create валидирует черновик и добавляет сотрудника. При ошибках валидации
// запись не создаётся.
func (s *Service) create(ctx context.Context, d dto.EmployeeDraft) (dto.Employee, validation.Errors) {
	d = trimDraft(d)

	if errs := s.validator.Validate(d); !errs.Valid() {
		for field := range errs {
			metrics.ValidationFailures.WithLabelValues(field).Inc()
		}
		return dto.Employee{}, errs
	}

	employee := s.employees.Create(ctx, d)
	metrics.EmployeesCreated.Inc()

	s.publishCreated(ctx, employee)

	return employee, nil
}

func (s *Service) publishCreated(ctx context.Context, e dto.Employee) {
	if s.producer == nil {
		return
	}

	if err := s.producer.ProduceEmployeeCreated(ctx, e); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("employee_id", e.ID).Msg("employee created event not published")
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
}

// @Summary Создать сотрудника
// @Tags    Employees
// @Accept  json
// @Produce json
// @Param   request body dto.EmployeeDraft true "Сотрудник"
// @Success 201 {object} dto.Employee
// @Failure 400 {object} validationErrorResponse "VALIDATION ERROR — ошибки по полям"
// @description Варианты 400 (VALIDATION ERROR):
// @description - required: firstName, lastName, dateOfBirth, startDate, street, city, state, zipCode, department
// @description - dateOfBirth: не моложе 16 лет на сегодня
// @description - startDate: не раньше даты рождения и не раньше 16-летия
// @description - state, department: значение из справочника
// @Router  /api/employees [post]
func (s *Service) createEmployee(ctx *fasthttp.RequestCtx) {
	var req dto.EmployeeDraft

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Errorf("json.Unmarshal: %w", err))
		return
	}

	employee, errs := s.create(ctx, req)
	if errs != nil {
		writeValidationError(ctx, errs)
		return
	}

	writeJSON(ctx, fasthttp.StatusCreated, employee)
}

// @Summary Список сотрудников
// @Tags    Employees
// @Produce json
// @Param   search query string false "Поиск без учёта регистра по всем полям"
// @Param   sort   query string false "Ключ сортировки" default(firstName)
// @Param   dir    query string false "asc | desc" default(asc)
// @Param   size   query int    false "10 | 25 | 50 | 100" default(10)
// @Param   page   query int    false "Номер страницы" default(1)
// @Success 200 {object} listResponse
// @Router  /api/employees [get]
func (s *Service) listEmployees(ctx *fasthttp.RequestCtx) {
	records := s.employees.List()
	page := s.engine.Apply(records, s.listState(ctx.QueryArgs(), records))
	metrics.ListViews.WithLabelValues("api").Inc()

	writeJSON(ctx, fasthttp.StatusOK, listResponse{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.State.Page,
		PageSize:   page.State.PageSize,
		TotalPages: page.TotalPages,
		Search:     page.State.Search,
		Sort:       page.State.SortKey,
		Direction:  string(page.State.Direction),
		Summary:    page.Summary(),
		Pages:      page.Numbers(),
	})
}

// @Summary Получить сотрудника по id
// @Tags    Employees
// @Produce json
// @Param   employee_id path string true "Идентификатор сотрудника"
// @Success 200 {object} dto.Employee
// @Failure 404 {object} errorResponse "employee not found"
// @Router  /api/employees/{employee_id} [get]
func (s *Service) getEmployee(ctx *fasthttp.RequestCtx) {
	employeeID, _ := ctx.UserValue("employee_id").(string)
	if strings.TrimSpace(employeeID) == "" {
		writeError(ctx, fasthttp.StatusBadRequest, ErrEmployeeIDRequired)
		return
	}

	row, err := s.employees.Get(employeeID)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			writeError(ctx, fasthttp.StatusNotFound, ErrEmployeeNotFound)
			return
		}

		writeError(ctx, fasthttp.StatusInternalServerError, fmt.Errorf("employeeRepository.Get: %w", err))
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, row)
}
