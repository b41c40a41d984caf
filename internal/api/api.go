package api

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
	"github.com/Artexxx/HR-Employees/internal/reference"
	"github.com/Artexxx/HR-Employees/internal/validation"
)

// @title           HR Employees
// @version         1.0
// @description     Создание сотрудников и просмотр списка с поиском, сортировкой и пагинацией.
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type EmployeeRepository interface {
	Create(ctx context.Context, d dto.EmployeeDraft) dto.Employee
	Get(id string) (*dto.Employee, error)
	List() []dto.Employee
}

type Validator interface {
	Validate(d dto.EmployeeDraft) validation.Errors
}

type Producer interface {
	ProduceEmployeeCreated(ctx context.Context, e dto.Employee) error
}

type ServiceDeps struct {
	Port int

	Employees EmployeeRepository
	Validator Validator
	Engine    *listview.Engine
	Reference *reference.Tables

	// Producer может быть nil: события о новых сотрудниках не публикуются.
	Producer Producer
}

type Service struct {
	r       *router.Router
	server  *fasthttp.Server
	handler fasthttp.RequestHandler
	port    int

	employees EmployeeRepository
	validator Validator
	engine    *listview.Engine
	ref       *reference.Tables
	producer  Producer
	views     *views
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:         rt,
		port:      d.Port,
		employees: d.Employees,
		validator: d.Validator,
		engine:    d.Engine,
		ref:       d.Reference,
		producer:  d.Producer,
		views:     mustLoadViews(),
	}

	s.mountRoutes()

	s.handler = RecoveryMiddleware(LoggingMiddleware(CORS(s.r.Handler)))
	s.server = &fasthttp.Server{
		Handler:            s.handler,
		Name:               "hr-employees",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	return s
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting HR employees API")

	emergencyShutdown := make(chan error, 1)
	go func() {
		emergencyShutdown <- s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Pages
	s.r.GET("/", s.index)
	s.r.GET("/employees/create", s.createEmployeePage)
	s.r.POST("/employees/create", s.submitEmployeeForm)
	s.r.GET("/employees", s.listEmployeesPage)

	// Employees
	s.r.POST("/api/employees", s.createEmployee)
	s.r.GET("/api/employees", s.listEmployees)
	s.r.GET("/api/employees/{employee_id}", s.getEmployee)

	// Reference
	s.r.GET("/api/reference/states", s.listStates)
	s.r.GET("/api/reference/departments", s.listDepartments)

	// Health & metrics
	s.r.GET("/health", s.healthHandler)
	s.r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	s.r.NotFound = s.notFoundPage
}
