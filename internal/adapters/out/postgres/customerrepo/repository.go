package customerrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgerrors"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "customer"

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return pgerrors.Translate(r.db.WithContext(ctx).Create(&dto).Error, entity, aggregate.ID())
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":        dto.Name,
		"email":       dto.Email,
		"phone":       dto.Phone,
		"street":      dto.Street,
		"city":        dto.City,
		"postal_code": dto.PostalCode,
		"country":     dto.Country,
	})
	if result.Error != nil {
		return pgerrors.Translate(result.Error, entity, aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return pgerrors.Translate(gorm.ErrRecordNotFound, entity, aggregate.ID())
	}

	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the customer row with SELECT ... FOR UPDATE.
func (r *GormCustomerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrors.Translate(result.Error, entity, id)
	}

	if result.RowsAffected == 0 {
		return pgerrors.Translate(gorm.ErrRecordNotFound, entity, id)
	}

	return nil
}

func (r *GormCustomerRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrors.Translate(err, entity, id)
	}

	return toDomain(dto)
}
