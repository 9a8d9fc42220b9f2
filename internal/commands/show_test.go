package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	crateerrors "crate/internal/errors"
	"crate/internal/mocks"
	"crate/internal/testutil"
)

func TestShowCommand_Handle(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		setup    func(m *mocks.MockCatalog)
		contains string
	}{
		{
			name: "found",
			args: []string{"p1"},
			setup: func(m *mocks.MockCatalog) {
				m.EXPECT().FetchProduct(mock.Anything, testutil.BaseURL, mock.Anything, "p1").
					Return(testutil.Detail("p1"), nil).Once()
			},
			contains: "Name: Abbey Road\n",
		},
		{
			name: "not found",
			args: []string{"p9"},
			setup: func(m *mocks.MockCatalog) {
				m.EXPECT().FetchProduct(mock.Anything, testutil.BaseURL, mock.Anything, "p9").
					Return(nil, crateerrors.NewHTTPError(http.StatusNotFound, "GET", "/products/p9", "")).Once()
			},
			contains: "Product p9 not found.\n",
		},
		{
			name: "transport failure",
			args: []string{"p1"},
			setup: func(m *mocks.MockCatalog) {
				m.EXPECT().FetchProduct(mock.Anything, testutil.BaseURL, mock.Anything, "p1").
					Return(nil, errors.New("connection refused")).Once()
			},
			contains: "Failed to load product p1: connection refused\n",
		},
		{
			name:     "missing id",
			args:     nil,
			setup:    func(*mocks.MockCatalog) {},
			contains: "Usage: show <productId>\n",
		},
		{
			name:     "too many ids",
			args:     []string{"p1", "p2"},
			setup:    func(*mocks.MockCatalog) {},
			contains: "Usage: show <productId>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockCatalog := mocks.NewMockCatalog(t)
			tt.setup(mockCatalog)
			var out bytes.Buffer
			cmd := NewShowCommand(mockCatalog, testutil.BaseURL, &out, testutil.Logger())

			// Act
			err := cmd.Handle(context.Background(), testutil.Session("abc123"), tt.args)

			// Assert
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestShowCommand_Execute_EmptyID(t *testing.T) {
	cmd := NewShowCommand(mocks.NewMockCatalog(t), testutil.BaseURL, &bytes.Buffer{}, testutil.Logger())

	_, err := cmd.Execute(context.Background(), testutil.Session("abc123"), ShowRequest{ProductID: " "})

	assert.True(t, crateerrors.IsValidation(err))
}

func TestProductPrinter_NoCarriers(t *testing.T) {
	var out bytes.Buffer
	detail := testutil.Detail("p1")
	detail.SoundCarriers = nil

	newProductPrinter(&out).printProduct(detail)

	assert.Contains(t, out.String(), "SoundCarriers\nnone available\n")
}
