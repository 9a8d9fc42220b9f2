package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"crate/internal/domain"
	"crate/internal/errors"
)

// productPrinter writes product records for the operator.
type productPrinter struct {
	out     io.Writer
	heading lipgloss.Style
	label   lipgloss.Style
}

func newProductPrinter(out io.Writer) productPrinter {
	r := lipgloss.NewRenderer(out)
	return productPrinter{
		out:     out,
		heading: r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Bold(true),
	}
}

func (p productPrinter) field(name, value string) string {
	return p.label.Render(name+":") + " " + value + "\n"
}

// printProduct writes the full record: the fields, the track list and the
// available sound carriers.
func (p productPrinter) printProduct(product *domain.ProductDetail) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(p.heading.Render("Product"))
	b.WriteString("\n")
	b.WriteString(p.field("Name", product.Name))
	b.WriteString(p.field("From", product.ArtistName))
	b.WriteString(p.field("Year", product.ReleaseYear.String()))
	b.WriteString(p.field("Label", product.LabelName))
	b.WriteString(p.field("Duration", product.Duration))
	b.WriteString(p.field("Genre", product.Genre))

	b.WriteString("\n")
	b.WriteString(p.heading.Render("Songs"))
	b.WriteString("\n")
	for _, song := range product.Songs {
		b.WriteString(song.String())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.heading.Render("SoundCarriers"))
	b.WriteString("\n")
	if len(product.SoundCarriers) == 0 {
		b.WriteString("none available\n")
	}
	for _, carrier := range product.SoundCarriers {
		b.WriteString(carrier.String())
		b.WriteString("\n")
	}

	fmt.Fprint(p.out, b.String())
}

// printFetchError reports a failed product lookup.
func (p productPrinter) printFetchError(productID string, err error) {
	if errors.IsNotFound(err) {
		fmt.Fprintf(p.out, "Product %s not found.\n", productID)
		return
	}
	fmt.Fprintf(p.out, "Failed to load product %s: %v\n", productID, err)
}
