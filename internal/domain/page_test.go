package domain

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 15)
	for i := range items {
		items[i] = i
	}

	first := Paginate(items, 0, 10)
	if len(first.Content) != 10 || !first.First || first.Last || first.TotalPages != 2 || first.TotalElements != 15 {
		t.Fatalf("unexpected first page: %+v", first)
	}

	second := Paginate(items, 1, 10)
	if len(second.Content) != 5 || second.First || !second.Last {
		t.Fatalf("unexpected second page: %+v", second)
	}
	if second.Content[0] != 10 {
		t.Fatalf("expected slice to start at element 10, got %d", second.Content[0])
	}
}

func TestPaginateClampsPageNumber(t *testing.T) {
	items := []int{1, 2, 3}

	beyond := Paginate(items, 99, 2)
	if beyond.PageNumber != 1 || len(beyond.Content) != 1 || !beyond.Last {
		t.Fatalf("expected clamp to last page, got %+v", beyond)
	}

	negative := Paginate(items, -3, 2)
	if negative.PageNumber != 0 || !negative.First {
		t.Fatalf("expected clamp to first page, got %+v", negative)
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]string{}, 5, 10)
	if page.PageNumber != 0 || page.TotalPages != 0 || !page.First || !page.Last || len(page.Content) != 0 {
		t.Fatalf("unexpected empty page: %+v", page)
	}
}
