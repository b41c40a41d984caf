package api

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Employees/internal/validation"
)

var (
	ErrEmployeeIDRequired = errors.New("поле employee id не передано")
	ErrEmployeeNotFound   = errors.New("сотрудник не найден")
	ErrValidation         = errors.New("validation failed")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"Готово"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Code    string            `json:"code" example:"Bad Request"`
	Message string            `json:"message" example:"validation failed"`
	Errors  validation.Errors `json:"errors"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	writeJSON(ctx, httpStatus, errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

func writeValidationError(ctx *fasthttp.RequestCtx, errs validation.Errors) {
	writeJSON(ctx, fasthttp.StatusBadRequest, validationErrorResponse{
		Code:    fasthttp.StatusMessage(fasthttp.StatusBadRequest),
		Message: ErrValidation.Error(),
		Errors:  errs,
	})
}

func writeHTML(ctx *fasthttp.RequestCtx, statusCode int, v *view, data any) {
	ctx.SetContentType("text/html; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	if err := v.render(ctx, data); err != nil {
		log.Error().Err(err).Str("view", v.name).Msg("render view failed")
		ctx.ResetBody()
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}
