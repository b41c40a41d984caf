package listview

import "fmt"

const maxVisiblePages = 5

// PageItem — элемент строки пагинации: номер страницы или многоточие.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumbers строит строку пагинации не более чем из пяти номеров подряд;
// первая и последняя страницы видны всегда, пропуски заменяются многоточием.
//
//	10 страниц, текущая 1: 1 2 3 4 5 … 10
//	10 страниц, текущая 7: 1 … 6 7 8 9 10
func PageNumbers(current, totalPages int) []PageItem {
	var items []PageItem

	if totalPages <= maxVisiblePages {
		for i := 1; i <= totalPages; i++ {
			items = append(items, PageItem{Number: i})
		}
		return items
	}

	items = append(items, PageItem{Number: 1})

	var start, end int
	switch {
	case current <= 3:
		start, end = 2, 5
	case current >= totalPages-3:
		start, end = totalPages-4, totalPages
	default:
		start, end = current-1, current+1
	}

	if start > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		items = append(items, PageItem{Number: i})
	}
	if end < totalPages-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	if end < totalPages {
		items = append(items, PageItem{Number: totalPages})
	}

	return items
}

func Summary(from, to, total int) string {
	return fmt.Sprintf("Showing %d to %d of %d entries", from, to, total)
}
