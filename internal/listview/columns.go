package listview

import (
	"github.com/Artexxx/HR-Employees/internal/dto"
)

// Column — колонка таблицы сотрудников.
type Column struct {
	Key   string
	Label string
	Date  bool
	value func(e dto.Employee) string
}

// Columns в порядке отображения.
var Columns = []Column{
	{Key: dto.FieldFirstName, Label: "First Name", value: func(e dto.Employee) string { return e.FirstName }},
	{Key: dto.FieldLastName, Label: "Last Name", value: func(e dto.Employee) string { return e.LastName }},
	{Key: dto.FieldStartDate, Label: "Start Date", Date: true, value: func(e dto.Employee) string { return e.StartDate }},
	{Key: dto.FieldDepartment, Label: "Department", value: func(e dto.Employee) string { return e.Department }},
	{Key: dto.FieldDateOfBirth, Label: "Date of Birth", Date: true, value: func(e dto.Employee) string { return e.DateOfBirth }},
	{Key: dto.FieldStreet, Label: "Street", value: func(e dto.Employee) string { return e.Street }},
	{Key: dto.FieldCity, Label: "City", value: func(e dto.Employee) string { return e.City }},
	{Key: dto.FieldState, Label: "State", value: func(e dto.Employee) string { return e.State }},
	{Key: dto.FieldZipCode, Label: "Zip Code", value: func(e dto.Employee) string { return e.ZipCode }},
}

func LookupColumn(key string) (Column, bool) {
	for _, c := range Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Raw возвращает сохранённое значение поля.
func (c Column) Raw(e dto.Employee) string {
	return c.value(e)
}
