// Package testutil provides test utilities and fixtures shared across packages.
package testutil

import (
	"log/slog"

	"crate/internal/domain"
	"crate/internal/logging"
)

// BaseURL is the catalog address used by tests that never hit the network.
const BaseURL = "http://localhost:8080/api/v1"

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// Session returns an authenticated session with the given id.
func Session(id string) *domain.Session {
	return &domain.Session{
		SessionID: id,
		Username:  "tf-test",
		Roles:     []string{},
	}
}

// Summary returns a product search hit.
func Summary(id, name, artist string) domain.ProductSummary {
	return domain.ProductSummary{
		ID:            id,
		Name:          name,
		ArtistName:    artist,
		ReleaseYear:   "1969",
		SmallestPrice: 9.99,
	}
}

// Detail returns a complete product record.
func Detail(id string) *domain.ProductDetail {
	return &domain.ProductDetail{
		ID:          id,
		Name:        "Abbey Road",
		ArtistName:  "The Beatles",
		ReleaseYear: "1969",
		LabelName:   "Apple",
		Duration:    "47:03",
		Genre:       "Rock",
		Songs: []domain.Song{
			{Title: "Come Together", Duration: "4:20"},
			{Title: "Something", Duration: "3:03"},
		},
		SoundCarriers: []domain.SoundCarrier{
			{Name: "CD", AmountAvailable: 12, PricePerCarrier: 9.99},
			{Name: "VINYL", AmountAvailable: 2, PricePerCarrier: 24.5},
		},
	}
}
