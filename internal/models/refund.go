package models

import "time"

// RefundRequest is a buyer-filed refund request linked to an order
type RefundRequest struct {
	ID          uint64
	OrderNumber string
	Reason      string
	CreatedAt   time.Time
}

// RefundQueryResult is the renderable outcome of a gateway refund-status
// check. It is always returned, gateway failures included.
type RefundQueryResult struct {
	Success bool   `json:"success"`
	Status  *int   `json:"status,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Error   string `json:"error,omitempty"`
}
