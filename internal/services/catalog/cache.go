package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"crate/internal/domain"
)

// CachingCatalog serves repeated product lookups from memory. Searches are
// always forwarded. The cache runs without its expiry goroutine; expired
// entries are simply not returned.
type CachingCatalog struct {
	next   domain.Catalog
	cache  *ttlcache.Cache[string, *domain.ProductDetail]
	logger *slog.Logger
}

var _ domain.Catalog = (*CachingCatalog)(nil)

// NewCachingCatalog wraps next with a product detail cache holding up to
// capacity entries for ttl each.
func NewCachingCatalog(next domain.Catalog, ttl time.Duration, capacity uint64, logger *slog.Logger) *CachingCatalog {
	return &CachingCatalog{
		next: next,
		cache: ttlcache.New[string, *domain.ProductDetail](
			ttlcache.WithTTL[string, *domain.ProductDetail](ttl),
			ttlcache.WithCapacity[string, *domain.ProductDetail](capacity),
			ttlcache.WithDisableTouchOnHit[string, *domain.ProductDetail](),
		),
		logger: logger,
	}
}

// Search forwards to the wrapped catalog.
func (c *CachingCatalog) Search(
	ctx context.Context,
	baseURL string,
	session *domain.Session,
	query string,
) ([]domain.ProductSummary, error) {
	return c.next.Search(ctx, baseURL, session, query)
}

// FetchProduct returns a cached product when one is present for the same
// server and session, and otherwise fetches and remembers it. Errors are
// never cached.
func (c *CachingCatalog) FetchProduct(
	ctx context.Context,
	baseURL string,
	session *domain.Session,
	productID string,
) (*domain.ProductDetail, error) {
	key := cacheKey(baseURL, session, productID)

	if item := c.cache.Get(key); item != nil {
		c.logger.DebugContext(ctx, "Product served from cache", "productId", productID)
		return item.Value(), nil
	}

	product, err := c.next.FetchProduct(ctx, baseURL, session, productID)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, product, ttlcache.DefaultTTL)
	return product, nil
}

// Len returns the number of cached products, expired ones included.
func (c *CachingCatalog) Len() int {
	return c.cache.Len()
}

func cacheKey(baseURL string, session *domain.Session, productID string) string {
	return normalizeURL(baseURL) + "|" + session.SessionID + "|" + productID
}
