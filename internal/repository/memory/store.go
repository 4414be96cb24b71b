// Package memory keeps all three entity stores in process memory. It enforces
// the same uniqueness and detach rules as the SQL schema and is used when no
// database is configured and in tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/org-service/internal/domain"
	"github.com/spec-kit/org-service/internal/repository"
)

// Store holds employees, departments and directorates behind one lock.
type Store struct {
	mu           sync.RWMutex
	employees    map[int64]domain.Employee
	departments  map[int64]domain.Department
	directorates map[int64]domain.Directorate
	nextID       int64
	now          func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		employees:    make(map[int64]domain.Employee),
		departments:  make(map[int64]domain.Department),
		directorates: make(map[int64]domain.Directorate),
		now:          time.Now,
	}
}

// Repositories exposes the store through the repository interfaces.
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Employees:    &employeeRepository{s: s},
		Departments:  &departmentRepository{s: s},
		Directorates: &directorateRepository{s: s},
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// paginate sorts items with the requested orders and slices out one page.
func paginate[T any](items []T, page repository.PageRequest, fields map[string]string, field func(T, string) any) (repository.Page[T], error) {
	page = page.Normalize()
	result := repository.Page[T]{Items: []T{}, Total: int64(len(items)), Page: page.Page, Size: page.Size}

	if _, err := repository.OrderClause(page.Sort, fields); err != nil {
		return result, err
	}
	orders := append(slices.Clone(page.Sort), repository.SortOrder{Field: "id"})

	slices.SortStableFunc(items, func(a, b T) int {
		for _, o := range orders {
			c := compareValues(field(a, fields[o.Field]), field(b, fields[o.Field]))
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	start := page.Offset()
	if start >= len(items) {
		return result, nil
	}
	end := min(start+page.Size, len(items))
	result.Items = append(result.Items, items[start:end]...)
	return result, nil
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case int64:
		return cmp.Compare(av, b.(int64))
	case int:
		return cmp.Compare(av, b.(int))
	case string:
		return cmp.Compare(av, b.(string))
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case *int64:
		bv := b.(*int64)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return -1
		case bv == nil:
			return 1
		default:
			return cmp.Compare(*av, *bv)
		}
	}
	return 0
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
