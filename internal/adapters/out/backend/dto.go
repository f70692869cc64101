package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type userDTO struct {
	ID     kernel.ID  `json:"id"`
	Name   *string    `json:"name"`
	Email  *string    `json:"email"`
	RoleID *kernel.ID `json:"role_id"`
}

func (dto userDTO) toDomain() account.User {
	u := account.User{
		ID:    dto.ID,
		Name:  deref(dto.Name),
		Email: deref(dto.Email),
	}
	if dto.RoleID != nil {
		u.RoleID = int(dto.RoleID.Int64())
	}
	return u
}

type driverDTO struct {
	ID   kernel.ID `json:"id"`
	Name *string   `json:"name"`
}

func (dto driverDTO) toDomain() (*driver.Driver, error) {
	name := strings.TrimSpace(deref(dto.Name))
	if name == "" {
		return driver.NewPlaceholder(dto.ID)
	}
	return driver.NewDriver(dto.ID, name)
}

type customerDTO struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type lineItemDTO struct {
	Name     *string      `json:"name"`
	Quantity int          `json:"quantity"`
	Price    kernel.Money `json:"price"`
}

type addressDTO struct {
	ID      kernel.ID `json:"id"`
	Address *string   `json:"address"`
}

type orderDTO struct {
	ID            kernel.ID     `json:"id"`
	OrderNumber   string        `json:"order_number"`
	Status        string        `json:"status"`
	Customer      *customerDTO  `json:"customer"`
	Driver        *driverDTO    `json:"driver"`
	Details       []lineItemDTO `json:"order_details"`
	Address       *addressDTO   `json:"address"`
	Quantity      *int          `json:"quantity"`
	Total         kernel.Money  `json:"total"`
	PaymentMethod *string       `json:"payment_method"`
	CreatedAt     timestamp     `json:"created_at"`
	UpdatedAt     timestamp     `json:"updated_at"`
}

func (dto orderDTO) toDomain() (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	params := order.Params{
		ID:            dto.ID,
		Number:        dto.OrderNumber,
		Status:        status,
		Total:         dto.Total,
		PaymentMethod: deref(dto.PaymentMethod),
		CreatedAt:     dto.CreatedAt.Time,
		UpdatedAt:     dto.UpdatedAt.Time,
	}
	if dto.Quantity != nil {
		params.Quantity = *dto.Quantity
	}
	if dto.Customer != nil {
		params.Customer = order.Customer{Name: deref(dto.Customer.Name), Email: deref(dto.Customer.Email)}
	}
	if dto.Address != nil {
		params.Address = &order.Address{ID: dto.Address.ID, Line: deref(dto.Address.Address)}
	}
	if dto.Driver != nil {
		if params.Driver, err = dto.Driver.toDomain(); err != nil {
			return nil, err
		}
	}
	for _, item := range dto.Details {
		params.Details = append(params.Details, order.LineItem{
			Name:     deref(item.Name),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return order.RestoreOrder(params)
}

func ordersToDomain(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	var errList []error
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			errList = append(errList, fmt.Errorf("order %s: %w", dto.ID, err))
			continue
		}
		orders = append(orders, o)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return orders, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data  userDTO `json:"data"`
	Token string  `json:"token"`
}

type userResponse struct {
	Data userDTO `json:"data"`
}

type orderListResponse struct {
	Data []orderDTO `json:"data"`
}

type orderResponse struct {
	Data orderDTO `json:"data"`
}

type statusChangeRequest struct {
	Status string `json:"status"`
}

type statusChangeResponse struct {
	Order struct {
		Status string `json:"status"`
	} `json:"order"`
}

type assignDriverRequest struct {
	DriverID kernel.ID `json:"driver_id"`
}

type assignDriverResponse struct {
	Driver *driverDTO `json:"driver"`
}

type driverListResponse struct {
	Data []driverDTO `json:"data"`
}

type collectionResponse struct {
	Data []any `json:"data"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// timestamp accepts the layouts the backend emits. null and "" leave the zero
// time; anything else that does not parse fails the decode.
type timestamp struct {
	time.Time
}

func (ts *timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}
