package domain

import "github.com/shopspring/decimal"

// SiteSettings carries the storefront-wide knobs the engine cares about.
// The admin back-office owns mutations; this side only reads.
type SiteSettings struct {
	CompanyName        string          `json:"companyName"`
	BaseCurrency       string          `json:"baseCurrency"` // domestic currency code, e.g. "UAH"
	MinWholesaleAmount decimal.Decimal `json:"minWholesaleAmount"`
	ReservationMinutes int             `json:"reservationTimeMinutes"`
}
