package producer

import (
	"time"

	"github.com/google/uuid"
)

// EmployeePayload — событие о новом сотруднике
type EmployeePayload struct {
	EmployeeID  string `json:"employee_id" example:"0b8e2f4c-6a57-4a8e-9f4e-2f3b1c2d9e11"` // Идентификатор сотрудника
	FirstName   string `json:"first_name" example:"Ann"`                                   // Имя
	LastName    string `json:"last_name" example:"Smith"`                                  // Фамилия
	DateOfBirth string `json:"date_of_birth" example:"1990-05-10"`                         // Дата рождения (YYYY-MM-DD)
	StartDate   string `json:"start_date" example:"2015-09-01"`                            // Дата выхода (YYYY-MM-DD)
	Department  string `json:"department" example:"Sales"`                                 // Отдел

	Address struct {
		Street  string `json:"street" example:"12 Main St"`
		City    string `json:"city" example:"Springfield"`
		State   string `json:"state" example:"IL"`
		ZipCode string `json:"zip_code" example:"62701"`
	} `json:"address" swaggertype:"object"` // Адрес
}

type Envelope[T any] struct {
	Kind       string    `json:"kind"        example:"employee_created"`                     // Тип события
	MessageID  uuid.UUID `json:"message_id"  example:"c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e"` // Идентификатор события (UUID v4)
	EmployeeID string    `json:"employee_id" example:"0b8e2f4c-6a57-4a8e-9f4e-2f3b1c2d9e11"` // Идентификатор сотрудника
	Payload    T         `json:"payload"`                                                    // Полезная нагрузка
	Timestamp  time.Time `json:"timestamp"   example:"2026-10-19T12:34:56Z"`                 // Время формирования события
	Source     string    `json:"source"      example:"hr-employees"`                         // Сервис-источник
}
