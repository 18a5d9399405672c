package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"pricetimeline/internal/domain"
	"pricetimeline/internal/parser"
	"pricetimeline/internal/repository"
	"pricetimeline/internal/timeline"

	"go.uber.org/zap"
)

// OfferInput is one offer as delivered by the extraction pipeline: display
// texts plus optional ISO-8601 (YYYY-MM-DD) validity bounds.
type OfferInput struct {
	RetailerName   string
	RetailerURL    string
	LogoURL        string
	PriceText      string
	DiscountText   string
	StoreCountText string
	ValidFrom      string
	ValidTo        string
	FlyerURL       string
}

// IngestInput is one crawled product snapshot.
type IngestInput struct {
	Slug             string
	Name             string
	SourceURL        string
	RegularPriceText string
	Offers           []OfferInput
	CrawledAt        time.Time
}

// ProductService handles ingestion and retrieval of crawled products
type ProductService struct {
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	offerRepo repository.OfferRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		offerRepo:   offerRepo,
		logger:      logger,
	}
}

var slugPattern = regexp.MustCompile(`/sleva/([^/?#]+)`)

// DeriveSlug extracts the product slug from a source URL such as
// "https://www.kupi.cz/sleva/banany". Falls back to the last path segment.
func DeriveSlug(url string) string {
	if m := slugPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}

	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Ingest upserts one product snapshot and replaces its offer set.
// Offers carrying neither a retailer name nor a price text are dropped;
// malformed validity dates resolve to absent bounds, never to an error.
func (s *ProductService) Ingest(ctx context.Context, input IngestInput) (*domain.Product, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = DeriveSlug(input.SourceURL)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug or source_url required", domain.ErrValidation)
	}

	crawledAt := input.CrawledAt
	if crawledAt.IsZero() {
		crawledAt = time.Now().UTC()
	}

	product := domain.Product{
		Slug:             slug,
		Name:             strings.TrimSpace(input.Name),
		SourceURL:        input.SourceURL,
		RegularPriceText: input.RegularPriceText,
		CrawledAt:        crawledAt,
	}

	var offers []domain.Offer
	for _, in := range input.Offers {
		offer, ok := s.buildOffer(in)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}

	id, err := s.productRepo.Upsert(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}
	product.ID = id

	if err := s.offerRepo.ReplaceForProduct(ctx, id, offers); err != nil {
		return nil, fmt.Errorf("replace offers: %w", err)
	}
	product.Offers = offers

	s.logger.Info("Ingested product snapshot",
		zap.String("slug", slug),
		zap.Int("offers", len(offers)),
		zap.Int("dropped", len(input.Offers)-len(offers)),
	)

	return &product, nil
}

// buildOffer maps one extracted offer to the domain, parsing display texts
// and validity dates. Returns false for offers with no retailer and no
// price, which carry nothing worth rendering.
func (s *ProductService) buildOffer(in OfferInput) (domain.Offer, bool) {
	retailer := strings.TrimSpace(in.RetailerName)
	if retailer == "" && strings.TrimSpace(in.PriceText) == "" {
		return domain.Offer{}, false
	}

	offer := domain.Offer{
		RetailerName: retailer,
		RetailerURL:  in.RetailerURL,
		LogoURL:      in.LogoURL,
		PriceText:    strings.TrimSpace(in.PriceText),
		DiscountText: strings.TrimSpace(in.DiscountText),
		FlyerURL:     in.FlyerURL,
		StoreCount:   parser.ParseStoreCount(in.StoreCountText),
		ValidFrom:    s.parseDate(in.ValidFrom),
		ValidTo:      s.parseDate(in.ValidTo),
	}

	if p := parser.ParsePrice(in.PriceText); p != nil {
		offer.PriceValue = p.Value
		offer.Currency = p.Currency
		offer.Unit = p.Unit
	}
	if d := parser.ParseDiscount(in.DiscountText); d != nil {
		offer.DiscountPct = d.Percentage
	}

	return offer, true
}

// parseDate turns an ISO date string into a civil day; anything
// unparseable resolves to absent.
func (s *ProductService) parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		s.logger.Warn("Dropping malformed validity date", zap.String("value", value))
		return nil
	}

	day := timeline.Day(t)
	return &day
}

// GetBySlug returns a product with its offers.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	offers, err := s.offerRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	product.Offers = offers

	return product, nil
}

// List returns all product summaries.
func (s *ProductService) List(ctx context.Context) ([]domain.ProductSummary, error) {
	return s.productRepo.List(ctx)
}

// Delete removes a product and its offers.
func (s *ProductService) Delete(ctx context.Context, slug string) error {
	return s.productRepo.Delete(ctx, slug)
}
