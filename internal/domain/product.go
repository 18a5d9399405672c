package domain

import "time"

// Product is a crawled product page with its current set of offers.
// Slug is the stable identity (derived from the source URL); each crawl
// replaces the offer set wholesale.
type Product struct {
	ID               int64
	Slug             string
	Name             string
	SourceURL        string
	RegularPriceText string
	Offers           []Offer
	CrawledAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductSummary is the listing view: identity plus how many offers the
// latest crawl produced.
type ProductSummary struct {
	Slug       string
	Name       string
	OfferCount int
	CrawledAt  time.Time
}
