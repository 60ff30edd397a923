package service

import "github.com/logtrail/logtrail/internal/domain"

const (
	minTableLimit = 1
	maxTableLimit = 100
)

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit int) int {
	if limit < minTableLimit {
		return minTableLimit
	}
	if limit > maxTableLimit {
		return maxTableLimit
	}
	return limit
}

func paginate(page, limit int, total int64) domain.Pagination {
	return domain.Pagination{
		CurrentPage: page,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		TotalCount:  total,
		PerPage:     limit,
		HasNext:     int64(page)*int64(limit) < total,
		HasPrev:     page > 1,
	}
}

// emptyPage is the degraded table response after a storage failure: the
// caller gets a well-formed zero-result page instead of an error.
func emptyPage(page, limit int) domain.LogPage {
	return domain.LogPage{
		Logs: []domain.TableRow{},
		Pagination: domain.Pagination{
			CurrentPage: page,
			TotalPages:  0,
			TotalCount:  0,
			PerPage:     limit,
			HasNext:     false,
			HasPrev:     false,
		},
	}
}
