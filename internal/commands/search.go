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

// SearchCommand searches the catalog and shows the product the operator
// picks from the hits.
type SearchCommand struct {
	catalog  domain.Catalog
	selector domain.Selector
	baseURL  string
	printer  productPrinter
	logger   *slog.Logger
}

// NewSearchCommand creates a new search command.
func NewSearchCommand(
	catalog domain.Catalog,
	selector domain.Selector,
	baseURL string,
	out io.Writer,
	logger *slog.Logger,
) *SearchCommand {
	return &SearchCommand{
		catalog:  catalog,
		selector: selector,
		baseURL:  baseURL,
		printer:  newProductPrinter(out),
		logger:   logger,
	}
}

// SearchRequest contains the parameters for the search command.
type SearchRequest struct {
	Query string
}

// SearchResult contains the result of the search command. Chosen and Product
// are nil when nothing matched or the selection was cancelled.
type SearchResult struct {
	Query    string
	Products []domain.ProductSummary
	Chosen   *domain.ProductSummary
	Product  *domain.ProductDetail
}

// Execute runs the search, lets the operator choose one hit and fetches it.
// When fetching the chosen product fails, the partial result is returned
// together with the error.
func (c *SearchCommand) Execute(ctx context.Context, session *domain.Session, req SearchRequest) (*SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.NewValidationError("query", req.Query, "non_empty", "search query must not be empty")
	}

	products, err := c.catalog.Search(ctx, c.baseURL, session, query)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{Query: query, Products: products}
	c.logger.DebugContext(ctx, "Search returned products", "query", query, "count", len(products))
	if len(products) == 0 {
		return result, nil
	}

	items := make([]string, len(products))
	for i, p := range products {
		items[i] = p.String()
	}

	prompt := fmt.Sprintf("Found %d products. Select one to show details", len(products))
	idx, err := c.selector.ChooseOne(ctx, prompt, items)
	if err != nil {
		if errors.IsCancelled(err) {
			return result, nil
		}
		return nil, fmt.Errorf("selection failed: %w", err)
	}
	if idx < 0 || idx >= len(products) {
		return nil, fmt.Errorf("selection failed: index %d out of range", idx)
	}

	result.Chosen = &products[idx]
	result.Product, err = c.catalog.FetchProduct(ctx, c.baseURL, session, result.Chosen.ID)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Handle is the prompt entry point: search <query>. The remaining tokens are
// joined with single spaces to form the query.
func (c *SearchCommand) Handle(ctx context.Context, session *domain.Session, args []string) error {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(c.printer.out, "Usage: search <query>")
		return nil
	}

	result, err := c.Execute(ctx, session, SearchRequest{Query: query})
	switch {
	case err != nil && result != nil && result.Chosen != nil:
		c.printer.printFetchError(result.Chosen.ID, err)
		return nil
	case err != nil:
		c.logger.DebugContext(ctx, "Search failed", "query", query, "error", err)
		fmt.Fprintf(c.printer.out, "Search failed: %v\n", err)
		return nil
	case len(result.Products) == 0:
		fmt.Fprintf(c.printer.out, "No matches found for %q.\n", result.Query)
	case result.Product != nil:
		c.printer.printProduct(result.Product)
	}
	return nil
}

// Definition describes the command for the registry.
func (c *SearchCommand) Definition() shell.Command {
	return shell.Command{
		Name:             "search",
		Handler:          c.Handle,
		ShortDescription: "searches the catalog and shows the details of a chosen product",
		ArgDescriptions:  []string{"<query> - words to look for in album and artist names"},
	}
}
