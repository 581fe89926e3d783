package order

import (
	"database/sql/driver"
	"errors"
)

// Status is the order fulfillment state. Any recognized status may follow any
// other; only membership is enforced.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusPaid      Status = "paid"
)

// Type is the venue channel the order was placed through.
type Type string

const (
	TypeRoomService Type = "room-service"
	TypeRestaurant  Type = "restaurant"
	TypeBar         Type = "bar"
)

var (
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidType   = errors.New("invalid order type")
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusPaid:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (t Type) String() string {
	return string(t)
}

func (t Type) Value() (driver.Value, error) {
	return t.String(), nil
}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRoomService, TypeRestaurant, TypeBar:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}
