package specification

import (
	"strconv"

	"bakery/domain/order"
	"bakery/domain/shared"

	"gorm.io/gorm"
)

// Scope is a GORM query function
type Scope = func(*gorm.DB) *gorm.DB

// Translator converts order specifications to GORM queries
// DDD principle: Infrastructure layer handles framework-specific concerns
type Translator interface {
	// Translate converts a domain specification to a GORM query function
	// Returns nil if the specification type is not supported
	Translate(spec shared.Specification[*order.Order]) Scope
}

// GormTranslator implements Translator for GORM against the orders table
type GormTranslator struct{}

// NewGormTranslator creates a new GORM translator
func NewGormTranslator() *GormTranslator {
	return &GormTranslator{}
}

// Translate converts a domain specification to a GORM query function
func (t *GormTranslator) Translate(spec shared.Specification[*order.Order]) Scope {
	if spec == nil {
		return nil
	}

	switch s := spec.(type) {
	case shared.AndSpecification[*order.Order]:
		return t.translateAnd(s)
	case shared.OrSpecification[*order.Order]:
		return t.translateOr(s)
	case shared.NotSpecification[*order.Order]:
		return t.translateNot(s)
	case order.ByRelevantDateSpecification:
		day := shared.DateAsISOStringWithoutTime(s.Date)
		// 每个比较都排除 NULL，NOT 包裹后仍为二值逻辑
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"(pick_up_date IS NOT NULL AND pick_up_date = ?) OR "+
					"(delivery_date IS NOT NULL AND delivery_date = ?) OR "+
					"(reservation_date IS NOT NULL AND reservation_date = ?)",
				day, day, day)
		}
	case order.ByYearSpecification:
		prefix := strconv.Itoa(s.Year) + "-%"
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(
				"(pick_up_date IS NOT NULL AND pick_up_date LIKE ?) OR "+
					"(pick_up_date IS NULL AND delivery_date IS NOT NULL AND delivery_date LIKE ?) OR "+
					"(pick_up_date IS NULL AND delivery_date IS NULL AND reservation_date IS NOT NULL AND reservation_date LIKE ?)",
				prefix, prefix, prefix)
		}
	}

	// Unknown specification type
	return nil
}

// translateAnd translates AndSpecification to GORM query
func (t *GormTranslator) translateAnd(spec shared.AndSpecification[*order.Order]) Scope {
	left, right := t.Translate(spec.Left), t.Translate(spec.Right)
	if left == nil || right == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(left(newQuery(db))).Where(right(newQuery(db)))
	}
}

// translateOr translates OrSpecification to a grouped OR condition
func (t *GormTranslator) translateOr(spec shared.OrSpecification[*order.Order]) Scope {
	left, right := t.Translate(spec.Left), t.Translate(spec.Right)
	if left == nil || right == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(newQuery(db).Where(left(newQuery(db))).Or(right(newQuery(db))))
	}
}

// translateNot translates NotSpecification to a negated group
func (t *GormTranslator) translateNot(spec shared.NotSpecification[*order.Order]) Scope {
	inner := t.Translate(spec.Spec)
	if inner == nil {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Not(inner(newQuery(db)))
	}
}

// newQuery returns a condition builder sharing db's connection but none of its clauses
func newQuery(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true})
}
