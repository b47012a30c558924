package models

import "encoding/json"

// Customer is forwarded as received. Each field keeps the caller's raw JSON
// value, null included; fields the caller omitted stay empty.
type Customer struct {
	FirstName json.RawMessage `json:"first_name,omitempty"`
	LastName  json.RawMessage `json:"last_name,omitempty"`
	Email     json.RawMessage `json:"email,omitempty"`
}
