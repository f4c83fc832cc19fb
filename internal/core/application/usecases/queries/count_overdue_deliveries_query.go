package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var ErrCountOverdueDeliveriesQueryIsNotConstructed = errors.New(
	"CountOverdueDeliveriesQuery must be created via NewCountOverdueDeliveriesQuery constructor",
)

// CountOverdueDeliveriesQuery counts active deliveries whose estimate lies
// before the given instant.
type CountOverdueDeliveriesQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewCountOverdueDeliveriesQuery(now time.Time) CountOverdueDeliveriesQuery {
	return CountOverdueDeliveriesQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q CountOverdueDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrCountOverdueDeliveriesQueryIsNotConstructed)
}

func (q CountOverdueDeliveriesQuery) statement() sq.SelectBuilder {
	return statements.
		Select("count(*) AS overdue").
		From("deliveries").
		Where(sq.Eq{"status": activeDeliveryStatuses()}).
		Where(sq.Lt{"estimated_delivery_time": q.now})
}

type CountOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewCountOverdueDeliveriesQueryHandler(db *gorm.DB) CountOverdueDeliveriesQueryHandler {
	return CountOverdueDeliveriesQueryHandler{db: db}
}

func (h CountOverdueDeliveriesQueryHandler) Handle(ctx context.Context, query CountOverdueDeliveriesQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var rows []struct{ Overdue int64 }
	if err := scan(ctx, h.db, query.statement(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Overdue, nil
}
