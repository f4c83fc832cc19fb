package deliveryrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "delivery"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// Partial unique indexes back the one-delivery-per-order and
// one-active-delivery-per-courier rules; violations surface as ConflictError.
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerrors.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

// Update writes status and timestamps. Order, courier, distance and estimate
// are fixed at assignment.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"picked_up_at": dto.PickedUpAt,
		"delivered_at": dto.DeliveredAt,
	})
	if result.Error != nil {
		return pgerrors.Translate(result.Error, entity, aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return pgerrors.Translate(gorm.ErrRecordNotFound, entity, aggregate.ID())
	}

	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormDeliveryRepository) ExistsUnfailedForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	return r.exists(ctx, "order deliveries", orderID,
		"order_id = ? AND status <> ?", orderID.Bytes(), delivery.Failed.String())
}

func (r *GormDeliveryRepository) ExistsActiveForCourier(ctx context.Context, courierID kernel.UUID) (bool, error) {
	return r.exists(ctx, "courier deliveries", courierID,
		"courier_id = ? AND status IN ?", courierID.Bytes(), activeStatusNames())
}

func (r *GormDeliveryRepository) exists(ctx context.Context, what string, id kernel.UUID, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, pgerrors.Translate(err, what, id)
	}
	return count > 0, nil
}

func (r *GormDeliveryRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrors.Translate(err, entity, id)
	}

	return toDomain(dto)
}

func activeStatusNames() []string {
	active := delivery.ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, s := range active {
		names = append(names, s.String())
	}
	return names
}
