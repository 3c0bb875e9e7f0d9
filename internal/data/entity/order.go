package entity

import "time"

type Coupon struct {
	ID          int64     `db:"id"`
	Code        string    `db:"code"`
	Description string    `db:"description"`
	ExpireAt    time.Time `db:"expire_at"`
	Percentage  int       `db:"percentage"`
}

// Invoice owns its tickets. TotalPrice is always server-computed.
type Invoice struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	OrderDate    time.Time `db:"order_date"`
	NowPlayingID int64     `db:"nowplaying_id"`
	Paid         bool      `db:"paid"`
	TotalPrice   float64   `db:"total_price"`
	CouponID     *int64    `db:"coupon_id"`
	Tickets      []Ticket  `db:"-"`
}

type Ticket struct {
	ID        int64   `db:"id"`
	Price     float64 `db:"price"`
	Seat      string  `db:"seat"`
	InvoiceID int64   `db:"invoice_id"`
}
