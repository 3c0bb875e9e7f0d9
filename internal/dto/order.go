package dto

type CouponDto struct {
	ID          string `json:"id,omitempty"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	ExpireAt    string `json:"expireAt,omitempty"`
	Percentage  *int   `json:"percentage,omitempty"`
}

// InvoiceDto carries an optional couponCode; totalPrice is never accepted
// from the client and is filled in by the service on create.
type InvoiceDto struct {
	ID           string      `json:"id,omitempty"`
	Username     string      `json:"username,omitempty"`
	OrderDate    string      `json:"orderDate,omitempty"`
	NowPlayingID string      `json:"nowPlayingId,omitempty"`
	Paid         *bool       `json:"paid,omitempty"`
	TotalPrice   *float64    `json:"totalPrice,omitempty"`
	CouponCode   string      `json:"couponCode,omitempty"`
	Tickets      []TicketDto `json:"tickets,omitempty"`
}

type TicketDto struct {
	ID        string   `json:"id,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Seat      string   `json:"seat,omitempty"`
	InvoiceID string   `json:"invoiceId,omitempty"`
}
