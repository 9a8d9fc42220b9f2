package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Catalog handles product queries for an authenticated session.
type Catalog interface {
	// Search returns the products matching a free-text query.
	Search(ctx context.Context, baseURL string, session *Session, query string) ([]ProductSummary, error)

	// FetchProduct returns the full record of a single product.
	FetchProduct(ctx context.Context, baseURL string, session *Session, productID string) (*ProductDetail, error)
}

// ProductSummary is a single search hit.
type ProductSummary struct {
	ID            string      `json:"productId"`
	Name          string      `json:"name"`
	ArtistName    string      `json:"artistName"`
	ReleaseYear   FlexibleStr `json:"releaseYear"`
	SmallestPrice float64     `json:"smallestPrice"`
}

func (p ProductSummary) String() string {
	return fmt.Sprintf("Album %s by %s released in %s available from %s€",
		p.Name, p.ArtistName, p.ReleaseYear, formatPrice(p.SmallestPrice))
}

// ProductDetail is the full product record.
type ProductDetail struct {
	ID            string         `json:"productId"`
	Name          string         `json:"name"`
	ArtistName    string         `json:"artistName"`
	ReleaseYear   FlexibleStr    `json:"releaseYear"`
	LabelName     string         `json:"labelName"`
	Duration      string         `json:"duration"`
	Genre         string         `json:"genre"`
	Songs         []Song         `json:"songs"`
	SoundCarriers []SoundCarrier `json:"soundCarriers"`
}

// Song is a single track of a product.
type Song struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

func (s Song) String() string {
	return s.Title + " " + s.Duration
}

// SoundCarrier is a purchasable medium (CD, vinyl, ...) of a product.
type SoundCarrier struct {
	Name            string  `json:"soundCarrierName"`
	AmountAvailable int     `json:"amountAvailable"`
	PricePerCarrier float64 `json:"pricePerCarrier"`
}

func (c SoundCarrier) String() string {
	return fmt.Sprintf("%s, %d available at %s€", c.Name, c.AmountAvailable, formatPrice(c.PricePerCarrier))
}

// FlexibleStr decodes a JSON string or number into a string. The catalog
// service is not consistent about how it encodes years.
type FlexibleStr string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleStr) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleStr(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*f = FlexibleStr(n.String())
	return nil
}

func (f FlexibleStr) String() string {
	return string(f)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
