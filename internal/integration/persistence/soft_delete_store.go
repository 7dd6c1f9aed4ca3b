// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
)

// activeOnly restricts a query to rows that have not been soft-deleted.
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// softDeleteStore implements adapter.SoftDeleteRepository for an entity E stored as model M.
// Entity repositories embed it and add their own queries.
type softDeleteStore[E any, M any] struct {
	db         *gorm.DB
	toEntity   func(*M) *E
	fromEntity func(*E) *M
	sortable   map[string]string // API property -> column
}

func newSoftDeleteStore[E any, M any](
	db *gorm.DB,
	toEntity func(*M) *E,
	fromEntity func(*E) *M,
	sortable map[string]string,
) *softDeleteStore[E, M] {
	return &softDeleteStore[E, M]{
		db:         db,
		toEntity:   toEntity,
		fromEntity: fromEntity,
		sortable:   sortable,
	}
}

// Create inserts a new row and writes the generated fields back into e.
func (s *softDeleteStore[E, M]) Create(ctx context.Context, e *E) error {
	m := s.fromEntity(e)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *s.toEntity(m)
	return nil
}

// Save persists every column of an existing row.
func (s *softDeleteStore[E, M]) Save(ctx context.Context, e *E) error {
	m := s.fromEntity(e)
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*e = *s.toEntity(m)
	return nil
}

// FindActiveByID retrieves a non-deleted row by its ID.
func (s *softDeleteStore[E, M]) FindActiveByID(ctx context.Context, id int64) (*E, error) {
	var m M
	result := s.db.WithContext(ctx).Scopes(activeOnly).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return s.toEntity(&m), nil
}

// ExistsActive checks whether a non-deleted row exists.
func (s *softDeleteStore[E, M]) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(new(M)).
		Scopes(activeOnly).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListActive retrieves a page of non-deleted rows.
func (s *softDeleteStore[E, M]) ListActive(ctx context.Context, req entity.PageRequest) (*entity.Page[*E], error) {
	orderBy, err := s.orderBy(req.Sort)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(new(M)).Scopes(activeOnly)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var models []M
	result := query.
		Clauses(orderBy).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	content := make([]*E, len(models))
	for i := range models {
		content[i] = s.toEntity(&models[i])
	}
	return entity.NewPage(content, req, total), nil
}

// SoftDelete flags a row as deleted. Already deleted rows are flagged again.
func (s *softDeleteStore[E, M]) SoftDelete(ctx context.Context, id int64) (*E, error) {
	db := s.db.WithContext(ctx)

	var m M
	result := db.Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	if err := db.Model(&m).Update("deleted", true).Error; err != nil {
		return nil, err
	}

	var deleted M
	if err := db.Where("id = ?", id).First(&deleted).Error; err != nil {
		return nil, err
	}
	return s.toEntity(&deleted), nil
}

// SoftDeleteMany soft-deletes each ID on its own. A failure stops the loop
// but keeps the rows deleted so far.
func (s *softDeleteStore[E, M]) SoftDeleteMany(ctx context.Context, ids []int64) ([]*E, error) {
	deleted := make([]*E, len(ids))
	for i, id := range ids {
		e, err := s.SoftDelete(ctx, id)
		if err != nil {
			return deleted, err
		}
		deleted[i] = e
	}
	return deleted, nil
}

// orderBy builds the ORDER BY clause from whitelisted sort properties.
// The id column is always the last key so pages are stable.
func (s *softDeleteStore[E, M]) orderBy(sort []entity.SortOrder) (clause.OrderBy, error) {
	columns := make([]clause.OrderByColumn, 0, len(sort)+1)
	byID := false

	for _, order := range sort {
		column, ok := s.sortable[order.Property]
		if !ok {
			return clause.OrderBy{}, domainerror.NewInvalidSortPropertyError(order.Property)
		}
		if column == "id" {
			byID = true
		}
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   order.Descending,
		})
	}

	if !byID {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return clause.OrderBy{Columns: columns}, nil
}

// baseSortable lists the sort properties every entity supports.
func baseSortable(extra map[string]string) map[string]string {
	sortable := map[string]string{
		"id":        "id",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	for property, column := range extra {
		sortable[property] = column
	}
	return sortable
}
