package core

type Pagination struct {
	CurrentPage int
	TotalPages  int
}

func (p Pagination) HasPrev() bool { return p.CurrentPage > 1 }
func (p Pagination) HasNext() bool { return p.CurrentPage < p.TotalPages }
func (p Pagination) PrevPath() string { return BlogPagePath(p.CurrentPage - 1) }
func (p Pagination) NextPath() string { return BlogPagePath(p.CurrentPage + 1) }

// Paginate returns the [start, end) window of items shown on page and the
// pagination state. ok is false when page is out of range; page 1 of an
// empty list is in range.
func Paginate(total, perPage, page int) (start, end int, p Pagination, ok bool) {
	if perPage <= 0 {
		perPage = total
		if perPage == 0 {
			perPage = 1
		}
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 || page > totalPages {
		return 0, 0, Pagination{}, false
	}

	start = (page - 1) * perPage
	end = min(start+perPage, total)

	return start, end, Pagination{CurrentPage: page, TotalPages: totalPages}, true
}
