package models

// Product is a priced item a charge can be raised for. Amount is in major
// currency units.
type Product struct {
	ID     int64 `json:"id" yaml:"id"`
	Amount int64 `json:"amount" yaml:"amount"`
}
