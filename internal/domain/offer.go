package domain

import "time"

// Offer represents one retailer's promotional offer for a product.
// ValidFrom and ValidTo are civil dates (midnight UTC, day precision).
// An offer with either bound missing is never active on any day.
type Offer struct {
	ID           int64
	ProductID    int64
	RetailerName string
	RetailerURL  string
	LogoURL      string
	PriceText    string
	PriceValue   *float64
	Currency     string
	Unit         string
	DiscountText string
	DiscountPct  *int
	ValidFrom    *time.Time
	ValidTo      *time.Time
	FlyerURL     string
	StoreCount   *int
	CreatedAt    time.Time
}

// HasValidity reports whether both validity bounds are present.
func (o Offer) HasValidity() bool {
	return o.ValidFrom != nil && o.ValidTo != nil
}

// ActiveOn reports whether the offer is active on the given civil day.
// Days are compared at day granularity; a window with start after end
// yields false for every day.
func (o Offer) ActiveOn(day time.Time) bool {
	if !o.HasValidity() {
		return false
	}
	return !day.Before(*o.ValidFrom) && !day.After(*o.ValidTo)
}
