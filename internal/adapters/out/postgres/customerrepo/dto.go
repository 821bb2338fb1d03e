package customerrepo

import (
	"meatmanager/internal/core/domain/model/customer"
	"meatmanager/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the GORM model of the customers table.
type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(120);not null;index"`
	Phone  string    `gorm:"type:varchar(40);not null"`
	Active bool      `gorm:"not null"`
	Notes  string    `gorm:"type:text;not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Active: aggregate.IsActive(),
		Notes:  aggregate.Notes(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Active, dto.Notes)
}
