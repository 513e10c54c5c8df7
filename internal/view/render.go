// Package view renders the catalog and runs the interactive terminal client.
package view

import (
	"fmt"
	"strings"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/catalog"
	"github.com/conn-castle/pricebook/internal/editor"
	"github.com/conn-castle/pricebook/internal/messages"
)

// Row addresses one variant line of the rendered catalog.
type Row struct {
	ProductID    int
	VariantIndex int
}

// Rows flattens products into selectable variant rows, in display order.
func Rows(products []catalog.Product) []Row {
	var rows []Row
	for _, p := range products {
		for i := range p.Variants {
			rows = append(rows, Row{ProductID: p.ID, VariantIndex: i})
		}
	}
	return rows
}

// Render projects the catalog for role. cursor is an index into Rows; a
// negative cursor draws no selection marker.
func Render(products []catalog.Product, role auth.Role, styles Styles, cursor int) string {
	if len(products) == 0 {
		return styles.Muted.Render(messages.ViewEmptyCatalog) + "\n"
	}
	var b strings.Builder
	row := 0
	for _, p := range products {
		b.WriteString(styles.ProductName.Render(p.Name))
		b.WriteString("\n")
		for _, v := range p.Variants {
			marker := "  "
			if row == cursor {
				marker = styles.Cursor.Render(">") + " "
			}
			b.WriteString(marker)
			b.WriteString(renderVariant(v, role, styles))
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderVariant(v catalog.Variant, role auth.Role, styles Styles) string {
	weight, price := styles.Weight, styles.Price
	if !v.Available {
		weight, price = styles.Muted, styles.Muted
	}

	parts := []string{weight.Render(v.Weight)}
	if !v.Available {
		parts = append(parts, styles.OutOfStock.Render(messages.ViewOutOfStock))
	}
	parts = append(parts, price.Render(editor.FormatPrice(v.SalePrice))+" "+styles.Muted.Render(messages.ViewCurrency))
	if v.MinPrice != nil {
		parts = append(parts, styles.Muted.Render(fmt.Sprintf(messages.ViewMinPriceFmt, editor.FormatPrice(*v.MinPrice))))
	}
	if role.CanEdit() {
		parts = append(parts, styles.EditHint.Render(messages.ViewEditHint))
	}
	return strings.Join(parts, "  ")
}
