package listview

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}

// PageSizes — допустимые значения "Show N entries".
var PageSizes = []int{10, 25, 50, 100}

const DefaultPageSize = 10

// State — параметры представления списка, которыми управляет пользователь.
// Все переходы возвращают новое состояние; недопустимые запросы оставляют
// состояние без изменений.
type State struct {
	Search    string
	SortKey   string // пустой ключ: порядок добавления
	Direction Direction
	PageSize  int
	Page      int
}

func DefaultState() State {
	return State{
		SortKey:   dto.FieldFirstName,
		Direction: Asc,
		PageSize:  DefaultPageSize,
		Page:      1,
	}
}

// ToggleSort: повторный выбор той же колонки меняет направление,
// новая колонка сортируется по возрастанию.
func (s State) ToggleSort(key string) State {
	if _, ok := LookupColumn(key); !ok {
		return s
	}

	if s.SortKey == key {
		if s.Direction == Asc {
			s.Direction = Desc
		} else {
			s.Direction = Asc
		}
		return s
	}

	s.SortKey = key
	s.Direction = Asc
	return s
}

// WithSort задаёт сортировку явно. Неизвестный ключ игнорируется.
func (s State) WithSort(key string, dir Direction) State {
	if _, ok := LookupColumn(key); !ok {
		return s
	}
	s.SortKey = key
	s.Direction = dir
	return s
}

// WithPageSize принимает только значения из PageSizes и сбрасывает страницу на первую.
func (s State) WithPageSize(size int) State {
	if !slices.Contains(PageSizes, size) {
		return s
	}
	s.PageSize = size
	s.Page = 1
	return s
}

// WithSearch меняет строку поиска и возвращает на первую страницу.
func (s State) WithSearch(term string) State {
	if term == s.Search {
		return s
	}
	s.Search = term
	s.Page = 1
	return s
}

// GoTo переходит на страницу page, если она существует для total записей.
// Запрос за пределами диапазона не выполняется.
func (s State) GoTo(page, total int) State {
	if page < 1 || page > TotalPages(total, s.PageSize) {
		return s
	}
	s.Page = page
	return s
}

// Query кодирует состояние в параметры запроса списка.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	if s.SortKey != "" {
		q.Set("sort", s.SortKey)
		q.Set("dir", string(s.Direction))
	}
	q.Set("size", strconv.Itoa(s.PageSize))
	q.Set("page", strconv.Itoa(s.Page))
	return q
}

func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
