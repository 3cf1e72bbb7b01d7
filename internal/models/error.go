package models

import "errors"

var (
	ErrConflictData         = errors.New("data conflicts with existing data")
	ErrDataNotFound         = errors.New("data not found")
	ErrInvalidCredentials   = errors.New("invalid login or password")
	ErrInvalidToken         = errors.New("invalid auth token")
	ErrUnauthorized         = errors.New("admin privilege required")
	ErrEmptyOrderID         = errors.New("order id is empty")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderHasNoCard       = errors.New("cannot mark delivered without a card")
	ErrGatewayNotConfigured = errors.New("gateway merchant credentials are not configured")
)
