package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// MinimumAge — минимальный возраст сотрудника в годах, как на дату проверки,
// так и на дату выхода на работу.
const MinimumAge = 16

var regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Errors — ошибки валидации по ключу поля. Пустая карта означает валидную запись.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

type Reference interface {
	HasState(code string) bool
	HasDepartment(name string) bool
}

type Validator struct {
	ref Reference
	now func() time.Time
}

// New создаёт валидатор. ref может быть nil: тогда штат и отдел проверяются
// только на заполненность. now по умолчанию time.Now.
func New(ref Reference, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{ref: ref, now: now}
}

// Validate проверяет черновик записи. Все правила выполняются независимо,
// ошибки накапливаются по полям.
func (v *Validator) Validate(d dto.EmployeeDraft) Errors {
	errs := make(Errors)

	required(errs, dto.FieldFirstName, d.FirstName, "First name is required")
	required(errs, dto.FieldLastName, d.LastName, "Last name is required")

	today := dateOf(v.now())
	birth, birthOK := v.checkBirthDate(errs, d.DateOfBirth, today)
	v.checkStartDate(errs, d.StartDate, birth, birthOK)

	required(errs, dto.FieldStreet, d.Street, "Street is required")
	required(errs, dto.FieldCity, d.City, "City is required")

	if required(errs, dto.FieldState, d.State, "State is required") && v.ref != nil && !v.ref.HasState(strings.TrimSpace(d.State)) {
		errs[dto.FieldState] = "Unknown state"
	}

	required(errs, dto.FieldZipCode, d.ZipCode, "Zip code is required")

	if required(errs, dto.FieldDepartment, d.Department, "Department is required") && v.ref != nil && !v.ref.HasDepartment(strings.TrimSpace(d.Department)) {
		errs[dto.FieldDepartment] = "Unknown department"
	}

	return errs
}

func (v *Validator) checkBirthDate(errs Errors, value string, today time.Time) (time.Time, bool) {
	if !required(errs, dto.FieldDateOfBirth, value, "Date of birth is required") {
		return time.Time{}, false
	}

	birth, ok := parseDate(value)
	if !ok {
		errs[dto.FieldDateOfBirth] = "Date of birth is invalid"
		return time.Time{}, false
	}

	if birth.After(today.AddDate(-MinimumAge, 0, 0)) {
		errs[dto.FieldDateOfBirth] = "A bit too young to be an employee"
	}

	return birth, true
}

func (v *Validator) checkStartDate(errs Errors, value string, birth time.Time, birthOK bool) {
	if !required(errs, dto.FieldStartDate, value, "Start date is required") {
		return
	}

	start, ok := parseDate(value)
	if !ok {
		errs[dto.FieldStartDate] = "Start date is invalid"
		return
	}

	if !birthOK {
		return
	}

	switch {
	case start.Before(birth):
		errs[dto.FieldStartDate] = "Not before birth!"
	case start.Before(birth.AddDate(MinimumAge, 0, 0)):
		errs[dto.FieldStartDate] = "Too young to start"
	}
}

// required записывает ошибку для пустого значения и сообщает, заполнено ли поле.
func required(errs Errors, field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
		return false
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !regexDate.MatchString(s) {
		return time.Time{}, false
	}

	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
