package queries

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// statements uses '?' placeholders; gorm rebinds them for the dialect.
var statements = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func scan[T any](ctx context.Context, db *gorm.DB, query sq.Sqlizer, dest *[]T) error {
	sqlText, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err = db.WithContext(ctx).Raw(sqlText, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("run query: %w", err)
	}
	return nil
}

// one returns ObjectNotFoundError for an empty result of a lookup by id.
func one[T any](rows []T, entity string, id any) ([]T, error) {
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError(entity, id)
	}
	return rows[:1], nil
}

func activeDeliveryStatuses() []string {
	active := delivery.ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, s := range active {
		names = append(names, s.String())
	}
	return names
}
