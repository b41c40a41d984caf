// Package seed generates sample employees for demo startups.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type Reference interface {
	StateCodes() []string
	DepartmentNames() []string
}

type Generator struct {
	fake faker.Faker
	ref  Reference
	now  func() time.Time
}

func NewGenerator(fake faker.Faker, ref Reference, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{fake: fake, ref: ref, now: now}
}

// Employees генерирует n сотрудников. Сгенерированные записи проходят
// валидацию: возраст от 18 до 65 лет, выход на работу не раньше 18 лет.
func (g *Generator) Employees(n int) []dto.Employee {
	states := g.ref.StateCodes()
	departments := g.ref.DepartmentNames()

	y, m, d := g.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	person := g.fake.Person()
	address := g.fake.Address()

	out := make([]dto.Employee, 0, n)
	for i := 0; i < n; i++ {
		oldest := today.AddDate(-65, 0, 0)
		youngest := today.AddDate(-18, 0, 0)
		birth := g.dayBetween(oldest, youngest)
		start := g.dayBetween(birth.AddDate(18, 0, 0), today)

		out = append(out, dto.Employee{
			ID:          uuid.New().String(),
			FirstName:   person.FirstName(),
			LastName:    person.LastName(),
			DateOfBirth: birth.Format(dto.DateLayout),
			StartDate:   start.Format(dto.DateLayout),
			Street:      address.StreetAddress(),
			City:        address.City(),
			State:       states[g.fake.IntBetween(0, len(states)-1)],
			ZipCode:     address.PostCode(),
			Department:  departments[g.fake.IntBetween(0, len(departments)-1)],
		})
	}

	return out
}

func (g *Generator) dayBetween(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.fake.IntBetween(0, days))
}
