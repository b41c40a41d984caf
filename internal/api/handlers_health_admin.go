package api

import (
	"github.com/valyala/fasthttp"
)

// @Summary Проверка здоровья сервиса
// @Tags    Admin
// @Success 200 {object} okResponse
// @Router  /health [get]
func (s *Service) healthHandler(ctx *fasthttp.RequestCtx) {
	ok(ctx, "OK")
}

// @Summary Справочник штатов
// @Tags    Reference
// @Produce json
// @Success 200 {array} dto.State
// @Router  /api/reference/states [get]
func (s *Service) listStates(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.ref.States)
}

// @Summary Справочник отделов
// @Tags    Reference
// @Produce json
// @Success 200 {array} dto.Department
// @Router  /api/reference/departments [get]
func (s *Service) listDepartments(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.ref.Departments)
}
