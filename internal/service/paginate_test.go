package service

import (
	"testing"

	"github.com/logtrail/logtrail/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name  string
		page  int
		limit int
		total int64
		want  domain.Pagination
	}{
		{
			name: "first of three pages", page: 1, limit: 10, total: 25,
			want: domain.Pagination{CurrentPage: 1, TotalPages: 3, TotalCount: 25, PerPage: 10, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page", page: 2, limit: 10, total: 25,
			want: domain.Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 25, PerPage: 10, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, limit: 10, total: 25,
			want: domain.Pagination{CurrentPage: 3, TotalPages: 3, TotalCount: 25, PerPage: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "exact multiple", page: 2, limit: 10, total: 20,
			want: domain.Pagination{CurrentPage: 2, TotalPages: 2, TotalCount: 20, PerPage: 10, HasNext: false, HasPrev: true},
		},
		{
			name: "no results", page: 1, limit: 10, total: 0,
			want: domain.Pagination{CurrentPage: 1, TotalPages: 0, TotalCount: 0, PerPage: 10, HasNext: false, HasPrev: false},
		},
		{
			name: "page beyond the end", page: 9, limit: 10, total: 25,
			want: domain.Pagination{CurrentPage: 9, TotalPages: 3, TotalCount: 25, PerPage: 10, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paginate(tc.page, tc.limit, tc.total))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(-3))
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 7, clampPage(7))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, clampLimit(0))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, 100, clampLimit(100))
	assert.Equal(t, 100, clampLimit(5000))
}
