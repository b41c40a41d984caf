package listview

import (
	"slices"
	"strings"
	"time"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// Engine строит страницу списка: фильтр, затем сортировка, затем пагинация.
// Исходный срез никогда не изменяется.
type Engine struct {
	dateLayout string
}

// NewEngine принимает формат отображения дат (Go layout), по которому
// выполняется поиск по датам.
func NewEngine(dateLayout string) *Engine {
	if dateLayout == "" {
		dateLayout = dto.DateLayout
	}
	return &Engine{dateLayout: dateLayout}
}

// Page — видимая часть списка и сведения для пагинации.
type Page struct {
	State      State
	Items      []dto.Employee
	Total      int
	TotalPages int
	From       int // номер первой записи на странице, 0 для пустой страницы
	To         int
}

func (p Page) Empty() bool {
	return len(p.Items) == 0
}

func (p Page) HasPrev() bool {
	return p.State.Page > 1
}

func (p Page) HasNext() bool {
	return p.State.Page < p.TotalPages
}

func (p Page) Numbers() []PageItem {
	return PageNumbers(p.State.Page, p.TotalPages)
}

func (p Page) Summary() string {
	return Summary(p.From, p.To, p.Total)
}

func (e *Engine) Apply(records []dto.Employee, st State) Page {
	matched := e.Filter(records, st.Search)
	e.Sort(matched, st.SortKey, st.Direction)
	return Paginate(matched, st)
}

// Count возвращает число записей, подходящих под строку поиска.
func (e *Engine) Count(records []dto.Employee, term string) int {
	return len(e.Filter(records, term))
}

// Display возвращает значение поля в том виде, в каком его видит пользователь.
func (e *Engine) Display(c Column, emp dto.Employee) string {
	raw := c.Raw(emp)
	if !c.Date {
		return raw
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(e.dateLayout)
}

// Filter возвращает копию записей, у которых хотя бы одно отображаемое поле
// содержит term без учёта регистра.
func (e *Engine) Filter(records []dto.Employee, term string) []dto.Employee {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]dto.Employee, 0, len(records))
	for _, r := range records {
		if term == "" || e.matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) matches(r dto.Employee, term string) bool {
	for _, c := range Columns {
		if strings.Contains(strings.ToLower(e.Display(c, r)), term) {
			return true
		}
	}
	return false
}

// Sort сортирует записи на месте, устойчиво. Пустой или неизвестный ключ
// сохраняет текущий порядок.
func (e *Engine) Sort(records []dto.Employee, key string, dir Direction) {
	c, ok := LookupColumn(key)
	if !ok {
		return
	}

	cmp := compareText
	if c.Date {
		cmp = compareDate
	}

	slices.SortStableFunc(records, func(a, b dto.Employee) int {
		res := cmp(c.Raw(a), c.Raw(b))
		if dir == Desc {
			return -res
		}
		return res
	})
}

func Paginate(records []dto.Employee, st State) Page {
	total := len(records)
	page := Page{
		State:      st,
		Total:      total,
		TotalPages: TotalPages(total, st.PageSize),
	}

	start := (st.Page - 1) * st.PageSize
	if st.PageSize <= 0 || start < 0 || start >= total {
		page.Items = []dto.Employee{}
		return page
	}

	end := min(start+st.PageSize, total)
	page.Items = records[start:end]
	page.From = start + 1
	page.To = end

	return page
}

func compareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareDate сравнивает календарные даты; некорректные значения идут раньше
// корректных и сравниваются как строки.
func compareDate(a, b string) int {
	ta, errA := time.Parse(dto.DateLayout, a)
	tb, errB := time.Parse(dto.DateLayout, b)

	switch {
	case errA == nil && errB == nil:
		return ta.Compare(tb)
	case errA != nil && errB != nil:
		return compareText(a, b)
	case errA != nil:
		return -1
	default:
		return 1
	}
}
