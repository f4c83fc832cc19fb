package http

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a Address) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.PostalCode, a.Country)
}

type CustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type Customer struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

func customerFromDomain(c *customer.Customer) Customer {
	a := c.Address()
	return Customer{
		ID:    c.ID().String(),
		Name:  c.Name(),
		Email: c.Email(),
		Phone: c.Phone(),
		Address: Address{
			Street:     a.Street(),
			City:       a.City(),
			PostalCode: a.PostalCode(),
			Country:    a.Country(),
		},
	}
}

func customerFromView(v queries.CustomerView) Customer {
	return Customer{
		ID:    v.ID.String(),
		Name:  v.Name,
		Email: v.Email,
		Phone: v.Phone,
		Address: Address{
			Street:     v.Street,
			City:       v.City,
			PostalCode: v.PostalCode,
			Country:    v.Country,
		},
	}
}

type OrderItemRequest struct {
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Weight      float64         `json:"weight"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItem struct {
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	UnitPrice   json.Number `json:"unitPrice"`
	Weight      float64     `json:"weight"`
}

type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customerId"`
	Status      string      `json:"status"`
	TotalPrice  json.Number `json:"totalPrice"`
	TotalWeight float64     `json:"totalWeight"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt"`
	Items       []OrderItem `json:"items"`
}

// money renders an amount as a JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func orderFromDomain(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   money(item.UnitPrice()),
			Weight:      item.Weight().Kilograms(),
		})
	}
	return Order{
		ID:          o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		Status:      o.Status().String(),
		TotalPrice:  money(o.TotalPrice()),
		TotalWeight: o.TotalWeight().Kilograms(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Items:       items,
	}
}

func orderFromView(v queries.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   money(item.UnitPrice),
			Weight:      item.Weight,
		})
	}
	return Order{
		ID:          v.ID.String(),
		CustomerID:  v.CustomerID.String(),
		Status:      v.Status,
		TotalPrice:  money(v.TotalPrice),
		TotalWeight: v.TotalWeight,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		Items:       items,
	}
}

type CreateBikeCourierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CreateCarCourierRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	LicensePlate string `json:"licensePlate"`
}

type Courier struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	IsAvailable  bool    `json:"isAvailable"`
	VehicleType  string  `json:"vehicleType"`
	MaxWeight    float64 `json:"maxWeight"`
	LicensePlate *string `json:"licensePlate"`
}

func courierFromDomain(c *courier.Courier) Courier {
	dto := Courier{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Phone:       c.Phone(),
		IsAvailable: c.IsAvailable(),
		VehicleType: c.Vehicle().Type().String(),
		MaxWeight:   c.MaxWeight().Kilograms(),
	}
	if plate, ok := c.Vehicle().LicensePlate(); ok {
		dto.LicensePlate = &plate
	}
	return dto
}

func courierFromView(v queries.CourierView) Courier {
	return Courier{
		ID:           v.ID.String(),
		Name:         v.Name,
		Phone:        v.Phone,
		IsAvailable:  v.IsAvailable,
		VehicleType:  v.VehicleType,
		MaxWeight:    v.MaxWeight,
		LicensePlate: v.LicensePlate,
	}
}

type AssignDeliveryRequest struct {
	OrderID    string  `json:"orderId"`
	CourierID  string  `json:"courierId"`
	DistanceKm float64 `json:"distanceKm"`
}

type Delivery struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	CourierID             string     `json:"courierId"`
	Status                string     `json:"status"`
	AssignedAt            time.Time  `json:"assignedAt"`
	PickedUpAt            *time.Time `json:"pickedUpAt"`
	DeliveredAt           *time.Time `json:"deliveredAt"`
	DistanceKm            float64    `json:"distanceKm"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime"`
}

func deliveryFromDomain(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:                    d.ID().String(),
		OrderID:               d.OrderID().String(),
		CourierID:             d.CourierID().String(),
		Status:                d.Status().String(),
		AssignedAt:            d.AssignedAt(),
		PickedUpAt:            d.PickedUpAt(),
		DeliveredAt:           d.DeliveredAt(),
		DistanceKm:            d.DistanceKm(),
		EstimatedDeliveryTime: d.EstimatedDeliveryTime(),
	}
}

func deliveryFromView(v queries.DeliveryView) Delivery {
	return Delivery{
		ID:                    v.ID.String(),
		OrderID:               v.OrderID.String(),
		CourierID:             v.CourierID.String(),
		Status:                v.Status,
		AssignedAt:            v.AssignedAt,
		PickedUpAt:            v.PickedUpAt,
		DeliveredAt:           v.DeliveredAt,
		DistanceKm:            v.DistanceKm,
		EstimatedDeliveryTime: v.EstimatedDeliveryTime,
	}
}

func mapAll[V, D any](views []V, fn func(V) D) []D {
	out := make([]D, 0, len(views))
	for _, v := range views {
		out = append(out, fn(v))
	}
	return out
}
