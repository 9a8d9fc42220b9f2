package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"crate/internal/domain"
	"crate/internal/errors"
	"crate/internal/shell"
)

// ShowCommand prints a single product by id.
type ShowCommand struct {
	catalog domain.Catalog
	baseURL string
	printer productPrinter
	logger  *slog.Logger
}

// NewShowCommand creates a new show command.
func NewShowCommand(catalog domain.Catalog, baseURL string, out io.Writer, logger *slog.Logger) *ShowCommand {
	return &ShowCommand{
		catalog: catalog,
		baseURL: baseURL,
		printer: newProductPrinter(out),
		logger:  logger,
	}
}

// ShowRequest contains the parameters for the show command.
type ShowRequest struct {
	ProductID string
}

// Execute fetches the requested product.
func (c *ShowCommand) Execute(ctx context.Context, session *domain.Session, req ShowRequest) (*domain.ProductDetail, error) {
	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		return nil, errors.NewValidationError("productId", req.ProductID, "non_empty", "product id must not be empty")
	}

	c.logger.DebugContext(ctx, "Showing product", "productId", productID)

	product, err := c.catalog.FetchProduct(ctx, c.baseURL, session, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Handle is the prompt entry point: show <productId>.
func (c *ShowCommand) Handle(ctx context.Context, session *domain.Session, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(c.printer.out, "Usage: show <productId>")
		return nil
	}

	product, err := c.Execute(ctx, session, ShowRequest{ProductID: args[0]})
	if err != nil {
		c.logger.DebugContext(ctx, "Product lookup failed", "productId", args[0], "error", err)
		c.printer.printFetchError(args[0], err)
		return nil
	}

	c.printer.printProduct(product)
	return nil
}

// Definition describes the command for the registry.
func (c *ShowCommand) Definition() shell.Command {
	return shell.Command{
		Name:             "show",
		Handler:          c.Handle,
		ShortDescription: "shows the details of a product",
		ArgDescriptions:  []string{"<productId> - id of the product, as listed by search"},
	}
}
