package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pricetimeline/internal/domain"
	"pricetimeline/internal/service"

	"github.com/go-chi/chi/v5"
)

// --- Request / Response DTOs ---

// OfferPayload is one offer as the extraction pipeline delivers it:
// display texts plus optional ISO-8601 validity dates.
type OfferPayload struct {
	RetailerName   string `json:"retailer_name"`
	RetailerURL    string `json:"retailer_url,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	PriceText      string `json:"price_text"`
	DiscountText   string `json:"discount_text,omitempty"`
	StoreCountText string `json:"store_count_text,omitempty"`
	ValidFrom      string `json:"valid_from,omitempty"`
	ValidTo        string `json:"valid_to,omitempty"`
	FlyerURL       string `json:"flyer_url,omitempty"`
}

// IngestRequest is one crawled product snapshot.
type IngestRequest struct {
	Slug             string         `json:"slug,omitempty"`
	Name             string         `json:"name"`
	SourceURL        string         `json:"source_url,omitempty"`
	RegularPriceText string         `json:"regular_price_text,omitempty"`
	Offers           []OfferPayload `json:"offers"`
	CrawledAt        string         `json:"crawled_at,omitempty"` // RFC3339
}

// OfferResponse is a stored offer with its parsed fields.
type OfferResponse struct {
	RetailerName string   `json:"retailer_name"`
	RetailerURL  string   `json:"retailer_url,omitempty"`
	LogoURL      string   `json:"logo_url,omitempty"`
	PriceText    string   `json:"price_text"`
	PriceValue   *float64 `json:"price_value,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Unit         string   `json:"unit,omitempty"`
	DiscountText string   `json:"discount_text,omitempty"`
	DiscountPct  *int     `json:"discount_pct,omitempty"`
	ValidFrom    string   `json:"valid_from,omitempty"`
	ValidTo      string   `json:"valid_to,omitempty"`
	FlyerURL     string   `json:"flyer_url,omitempty"`
	StoreCount   *int     `json:"store_count,omitempty"`
}

// ProductResponse is a product with its current offer set.
type ProductResponse struct {
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	SourceURL        string          `json:"source_url,omitempty"`
	RegularPriceText string          `json:"regular_price_text,omitempty"`
	Offers           []OfferResponse `json:"offers"`
	CrawledAt        time.Time       `json:"crawled_at"`
}

// ProductSummaryResponse is one row in the product listing.
type ProductSummaryResponse struct {
	Slug       string    `json:"slug"`
	Name       string    `json:"name"`
	OfferCount int       `json:"offer_count"`
	CrawledAt  time.Time `json:"crawled_at"`
}

const dayFormat = "2006-01-02"

func toOfferResponse(o domain.Offer) OfferResponse {
	resp := OfferResponse{
		RetailerName: o.RetailerName,
		RetailerURL:  o.RetailerURL,
		LogoURL:      o.LogoURL,
		PriceText:    o.PriceText,
		PriceValue:   o.PriceValue,
		Currency:     o.Currency,
		Unit:         o.Unit,
		DiscountText: o.DiscountText,
		DiscountPct:  o.DiscountPct,
		FlyerURL:     o.FlyerURL,
		StoreCount:   o.StoreCount,
	}
	if o.ValidFrom != nil {
		resp.ValidFrom = o.ValidFrom.Format(dayFormat)
	}
	if o.ValidTo != nil {
		resp.ValidTo = o.ValidTo.Format(dayFormat)
	}
	return resp
}

func toProductResponse(p *domain.Product) ProductResponse {
	offers := make([]OfferResponse, 0, len(p.Offers))
	for _, o := range p.Offers {
		offers = append(offers, toOfferResponse(o))
	}
	return ProductResponse{
		Slug:             p.Slug,
		Name:             p.Name,
		SourceURL:        p.SourceURL,
		RegularPriceText: p.RegularPriceText,
		Offers:           offers,
		CrawledAt:        p.CrawledAt,
	}
}

// --- Handlers ---

// ingestProduct handles POST /products
func (h *Handler) ingestProduct(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}

	input := service.IngestInput{
		Slug:             req.Slug,
		Name:             req.Name,
		SourceURL:        req.SourceURL,
		RegularPriceText: req.RegularPriceText,
	}
	if req.CrawledAt != "" {
		t, err := time.Parse(time.RFC3339, req.CrawledAt)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid crawled_at; use RFC3339"})
			return
		}
		input.CrawledAt = t
	}
	for _, o := range req.Offers {
		input.Offers = append(input.Offers, service.OfferInput{
			RetailerName:   o.RetailerName,
			RetailerURL:    o.RetailerURL,
			LogoURL:        o.LogoURL,
			PriceText:      o.PriceText,
			DiscountText:   o.DiscountText,
			StoreCountText: o.StoreCountText,
			ValidFrom:      o.ValidFrom,
			ValidTo:        o.ValidTo,
			FlyerURL:       o.FlyerURL,
		})
	}

	product, err := h.productService.Ingest(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toProductResponse(product))
}

// listProducts handles GET /products
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.productService.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]ProductSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, ProductSummaryResponse{
			Slug:       s.Slug,
			Name:       s.Name,
			OfferCount: s.OfferCount,
			CrawledAt:  s.CrawledAt,
		})
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// getProduct handles GET /products/{slug}
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct handles DELETE /products/{slug}
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productService.Delete(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
