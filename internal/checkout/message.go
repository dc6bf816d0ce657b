// Package checkout builds the order hand-off text. Copying it to a
// clipboard and opening the external chat link is the presentation layer's
// job; these functions have no side effects.
package checkout

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arkya-store/storefront-service/internal/models"
)

// OrderMessage enumerates the cart lines (1-based index, name, quantity)
// and the grand total. The total uses Spanish digit grouping, matching how
// the storefront displays prices.
func OrderMessage(lines []models.CartLine, total float64) string {
	var b strings.Builder
	b.WriteString("Hola, me interesan los siguientes productos:\n\n")

	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s - Cantidad: %d\n", i+1, line.Name, line.Quantity)
	}

	p := message.NewPrinter(language.Spanish)
	b.WriteString(p.Sprintf("\nTotal: $%d", int64(math.Round(total))))
	return b.String()
}

// InquiryMessage is the single-product line for direct product-page
// purchase intent.
func InquiryMessage(productName string) string {
	return "Hola, me interesa el producto: " + productName
}
