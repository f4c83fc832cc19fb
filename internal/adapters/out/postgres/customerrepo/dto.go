// Package customerrepo persists customer aggregates with gorm.
package customerrepo

import (
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row shape of the customers table. The address is
// flattened into columns.
type CustomerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string
	Phone      string
	Street     string
	City       string
	PostalCode string
	Country    string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	address := c.Address()
	return CustomerDTO{
		ID:         c.ID().Bytes(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		Street:     address.Street(),
		City:       address.City(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.City, dto.PostalCode, dto.Country)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, address)
}
