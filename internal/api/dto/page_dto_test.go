package dto_test

import (
	"testing"

	"github.com/spec-kit/org-service/internal/api/dto"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		page, size int
		total      int64
		want       dto.PageMeta
	}{
		{0, 20, 5, dto.PageMeta{Page: 0, Size: 20, Total: 5, TotalPages: 1}},
		{0, 2, 5, dto.PageMeta{Page: 0, Size: 2, Total: 5, TotalPages: 3, HasNext: true}},
		{2, 2, 5, dto.PageMeta{Page: 2, Size: 2, Total: 5, TotalPages: 3, HasPrev: true}},
		{1, 2, 6, dto.PageMeta{Page: 1, Size: 2, Total: 6, TotalPages: 3, HasNext: true, HasPrev: true}},
	}
	for _, tt := range tests {
		if got := dto.NewPageMeta(tt.page, tt.size, tt.total); got != tt.want {
			t.Errorf("NewPageMeta(%d, %d, %d) = %+v, want %+v", tt.page, tt.size, tt.total, got, tt.want)
		}
	}
}
