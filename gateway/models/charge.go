package models

// ChargeRequest is what a caller asks to pay for. It lives for one request.
type ChargeRequest struct {
	ProductID int64
	Quantity  int64
}
