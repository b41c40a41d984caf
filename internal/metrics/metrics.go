package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EmployeesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hr",
		Name:      "employees_created_total",
		Help:      "Number of employee records created.",
	})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Name:      "employee_validation_failures_total",
		Help:      "Number of rejected employee fields by field name.",
	}, []string{"field"})

	ListViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Name:      "employee_list_views_total",
		Help:      "Number of rendered employee list pages by surface.",
	}, []string{"surface"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr",
		Name:      "employee_events_published_total",
		Help:      "Employee-created events sent to Kafka by result.",
	}, []string{"result"})
)

// RegisterCollectionSize публикует размер коллекции сотрудников.
// Вызывается один раз при старте.
func RegisterCollectionSize(count func() int) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "hr",
		Name:      "employees",
		Help:      "Current number of employee records.",
	}, func() float64 { return float64(count()) })
}
