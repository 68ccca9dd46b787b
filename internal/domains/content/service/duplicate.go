package service

import (
	"context"

	"portfolio-backend/internal/domains/content/model"
	"portfolio-backend/internal/domains/content/repository"
)

// DuplicateDetector hỏi store một lần cho cả batch
type DuplicateDetector[T model.Record] struct {
	table repository.Table[T]
}

func NewDuplicateDetector[T model.Record](table repository.Table[T]) *DuplicateDetector[T] {
	return &DuplicateDetector[T]{table: table}
}

// FindExisting trả về tập con của ids đã tồn tại
func (d *DuplicateDetector[T]) FindExisting(ctx context.Context, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(ids) == 0 {
		return existing, nil
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found, err := d.table.ExistingIDs(ctx, unique)
	if err != nil {
		return nil, model.WrapStore("find existing", err)
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}
