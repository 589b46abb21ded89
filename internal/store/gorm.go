package store

import (
	"context"
	"reflect"
	"time"

	apperrors "employee-portal-backend/internal/errors"
	"employee-portal-backend/internal/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClient implements Client on top of a GORM connection
type GormClient struct {
	db *gorm.DB
}

// NewGormClient creates a store client over db
func NewGormClient(db *gorm.DB) *GormClient {
	return &GormClient{db: db}
}

// Query runs a filtered, ordered read with optional joins
func (c *GormClient) Query(ctx context.Context, q Query, dest interface{}) error {
	coll, err := lookupCollection(q.Collection)
	if err != nil {
		return err
	}
	if err := checkDest(coll, dest, reflect.Slice); err != nil {
		return err
	}
	tx, err := c.build(ctx, coll, q)
	if err != nil {
		return err
	}

	if err := tx.Find(dest).Error; err != nil {
		logger.WithContext(ctx).WithError(err).WithField("collection", coll.name).Error("Store query failed")
		return apperrors.NewQueryError(coll.name, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": coll.name,
		"filters":    len(q.Filters),
		"rows":       reflect.ValueOf(dest).Elem().Len(),
	}).Debug("Store query completed")
	return nil
}

// QueryOne runs a read that must match exactly one record
func (c *GormClient) QueryOne(ctx context.Context, q Query, dest interface{}) error {
	coll, err := lookupCollection(q.Collection)
	if err != nil {
		return err
	}
	if err := checkDest(coll, dest, reflect.Struct); err != nil {
		return err
	}
	tx, err := c.build(ctx, coll, q)
	if err != nil {
		return err
	}

	// Two rows are enough to tell "one" from "more than one".
	rows := reflect.New(reflect.SliceOf(coll.model))
	if err := tx.Limit(2).Find(rows.Interface()).Error; err != nil {
		logger.WithContext(ctx).WithError(err).WithField("collection", coll.name).Error("Store single-record query failed")
		return apperrors.NewQueryError(coll.name, err)
	}

	switch n := rows.Elem().Len(); n {
	case 0:
		return apperrors.NewQueryError(coll.name, apperrors.ErrRecordNotFound)
	case 1:
		reflect.ValueOf(dest).Elem().Set(rows.Elem().Index(0))
		return nil
	default:
		return apperrors.NewQueryError(coll.name, apperrors.ErrAmbiguousMatch)
	}
}

// Update applies a partial field set to the records matching filters
func (c *GormClient) Update(ctx context.Context, collection string, filters []Filter, fields map[string]interface{}) error {
	coll, err := lookupCollection(collection)
	if err != nil {
		return err
	}
	if len(filters) == 0 {
		return apperrors.MalformedQuery("update of %s without filters", coll.name)
	}
	if len(fields) == 0 {
		return apperrors.MalformedQuery("update of %s without fields", coll.name)
	}

	updates := make(map[string]interface{}, len(fields))
	for field, value := range fields {
		if !coll.updatable[field] {
			return apperrors.MalformedQuery("field %q of %s is not updatable", field, coll.name)
		}
		col, err := coll.column(field)
		if err != nil {
			return err
		}
		updates[col] = value
	}

	tx, err := c.build(ctx, coll, Query{Collection: coll.name, Filters: filters})
	if err != nil {
		return err
	}

	result := tx.Updates(updates)
	if result.Error != nil {
		logger.WithContext(ctx).WithError(result.Error).WithField("collection", coll.name).Error("Store update failed")
		return apperrors.NewUpdateError(coll.name, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewUpdateError(coll.name, apperrors.ErrRecordNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"collection": coll.name,
		"fields":     len(updates),
		"rows":       result.RowsAffected,
	}).Debug("Store update completed")
	return nil
}

func (c *GormClient) build(ctx context.Context, coll *collection, q Query) (*gorm.DB, error) {
	tx := c.db.WithContext(ctx).Model(coll.newModel())

	for _, f := range q.Filters {
		col, err := coll.column(f.Field)
		if err != nil {
			return nil, err
		}
		column := clause.Column{Name: col}
		value := normalizeValue(f.Value)
		switch f.Op {
		case OpEq:
			tx = tx.Where(clause.Eq{Column: column, Value: value})
		case OpGte:
			tx = tx.Where(clause.Gte{Column: column, Value: value})
		case OpLte:
			tx = tx.Where(clause.Lte{Column: column, Value: value})
		default:
			return nil, apperrors.MalformedQuery("unknown operator %q", f.Op)
		}
	}

	if q.Order != nil {
		col, err := coll.column(q.Order.Field)
		if err != nil {
			return nil, err
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: !q.Order.Ascending})
	}

	for _, join := range q.Joins {
		assoc, err := coll.association(join)
		if err != nil {
			return nil, err
		}
		tx = tx.Preload(assoc, inCreationOrder)
	}

	return tx, nil
}

// inCreationOrder keeps related records in a stable order from one read to the next
func inCreationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at").Order("id")
}

// checkDest verifies dest is a pointer to the collection's model (kind Struct)
// or to a slice of it (kind Slice).
func checkDest(coll *collection, dest interface{}, kind reflect.Kind) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return apperrors.MalformedQuery("destination for %s must be a non-nil pointer", coll.name)
	}
	t := v.Elem().Type()
	if kind == reflect.Slice {
		if t.Kind() != reflect.Slice {
			return apperrors.MalformedQuery("destination for %s must point to a slice", coll.name)
		}
		t = t.Elem()
	}
	if t != coll.model {
		return apperrors.MalformedQuery("destination type %s does not match %s", t, coll.name)
	}
	return nil
}

// Times are compared in UTC so that text-backed drivers order them correctly.
func normalizeValue(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}
