package dto

// Ключи полей записи сотрудника. Используются как ключи ошибок валидации,
// имена полей формы и ключи сортировки.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldDateOfBirth = "dateOfBirth"
	FieldStartDate   = "startDate"
	FieldStreet      = "street"
	FieldCity        = "city"
	FieldState       = "state"
	FieldZipCode     = "zipCode"
	FieldDepartment  = "department"
)

// DateLayout — формат хранения дат (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Employee — запись сотрудника
type Employee struct {
	ID          string `json:"id" example:"0b8e2f4c-6a57-4a8e-9f4e-2f3b1c2d9e11"` // Идентификатор, присваивается при создании
	FirstName   string `json:"firstName" example:"Ann"`                            // Имя
	LastName    string `json:"lastName" example:"Smith"`                           // Фамилия
	DateOfBirth string `json:"dateOfBirth" example:"1990-04-12"`                   // Дата рождения (YYYY-MM-DD)
	StartDate   string `json:"startDate" example:"2021-09-01"`                     // Дата выхода на работу (YYYY-MM-DD)
	Street      string `json:"street" example:"12 Main St"`                        // Улица
	City        string `json:"city" example:"Springfield"`                         // Город
	State       string `json:"state" example:"IL"`                                 // Код штата
	ZipCode     string `json:"zipCode" example:"62701"`                            // Почтовый индекс
	Department  string `json:"department" example:"Sales"`                         // Отдел
}

// EmployeeDraft — данные формы создания сотрудника, ещё без идентификатора
type EmployeeDraft struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	StartDate   string `json:"startDate"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Department  string `json:"department"`
}

func (d EmployeeDraft) WithID(id string) Employee {
	return Employee{
		ID:          id,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		StartDate:   d.StartDate,
		Street:      d.Street,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		Department:  d.Department,
	}
}

// Draft возвращает поля записи без идентификатора.
func (e Employee) Draft() EmployeeDraft {
	return EmployeeDraft{
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		StartDate:   e.StartDate,
		Street:      e.Street,
		City:        e.City,
		State:       e.State,
		ZipCode:     e.ZipCode,
		Department:  e.Department,
	}
}
