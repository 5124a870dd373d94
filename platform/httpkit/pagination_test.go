package httpkit

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		limit       int
		totalCount  int
		wantSkip    int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{name: "first page of 25", page: 1, limit: 10, totalCount: 25, wantSkip: 0, wantPages: 3, wantHasNext: true, wantHasPrev: false},
		{name: "middle page", page: 2, limit: 10, totalCount: 25, wantSkip: 10, wantPages: 3, wantHasNext: true, wantHasPrev: true},
		{name: "last partial page", page: 3, limit: 10, totalCount: 25, wantSkip: 20, wantPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "beyond last page is empty not an error", page: 9, limit: 10, totalCount: 25, wantSkip: 80, wantPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "defaults applied for zero inputs", page: 0, limit: 0, totalCount: 25, wantSkip: 0, wantPages: 3, wantHasNext: true, wantHasPrev: false},
		{name: "empty collection", page: 1, limit: 10, totalCount: 0, wantSkip: 0, wantPages: 0, wantHasNext: false, wantHasPrev: false},
		{name: "exact multiple", page: 2, limit: 5, totalCount: 10, wantSkip: 5, wantPages: 2, wantHasNext: false, wantHasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, meta := Paginate(tt.page, tt.limit, tt.totalCount)

			if skip != tt.wantSkip {
				t.Errorf("skip = %d, want %d", skip, tt.wantSkip)
			}
			if meta.TotalPages != tt.wantPages {
				t.Errorf("totalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.HasNextPage != tt.wantHasNext {
				t.Errorf("hasNextPage = %v, want %v", meta.HasNextPage, tt.wantHasNext)
			}
			if meta.HasPrevPage != tt.wantHasPrev {
				t.Errorf("hasPrevPage = %v, want %v", meta.HasPrevPage, tt.wantHasPrev)
			}
		})
	}
}

func TestPaginateTotalCountPreserved(t *testing.T) {
	_, meta := Paginate(1, 10, 42)
	if meta.TotalCount != 42 {
		t.Errorf("totalCount = %d, want 42", meta.TotalCount)
	}
	if meta.Limit != 10 {
		t.Errorf("limit = %d, want 10", meta.Limit)
	}
}
