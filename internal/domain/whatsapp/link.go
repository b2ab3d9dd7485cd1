// Package whatsapp formats the wa.me handoff for a submitted order. Outbound
// only: opening the link is up to the customer, there is no delivery
// confirmation.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vitrinehq/vitrine-backend/internal/application/consts"
	"github.com/vitrinehq/vitrine-backend/internal/infra/db"
)

// NormalizeNumber strips everything but digits, the form wa.me expects.
func NormalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OrderMessage renders the merchant-facing order summary in Portuguese.
func OrderMessage(siteName string, order db.Order, pixKey string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*NOVO PEDIDO - %s*\n\n", siteName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", order.CustomerPhone)
	if order.DeliveryType == consts.DeliveryTypeDelivery {
		fmt.Fprintf(&b, "*Entrega:* %s\n", order.CustomerAddress)
	} else {
		b.WriteString("*Retirada no local*\n")
	}

	b.WriteString("\n*ITENS DO PEDIDO*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s - R$ %s\n", item.Quantity, item.Name,
			item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2))
		if item.Observations != "" {
			fmt.Fprintf(&b, "  _%s_\n", item.Observations)
		}
	}
	fmt.Fprintf(&b, "\n*TOTAL: R$ %s*\n", order.TotalAmount.StringFixed(2))

	if order.Notes != "" {
		fmt.Fprintf(&b, "\n*Observações:* %s\n", order.Notes)
	}
	if pixKey != "" {
		fmt.Fprintf(&b, "\n*PIX:* %s\n", pixKey)
	}
	return b.String()
}

// Link builds the deep link, or "" when the site has no WhatsApp number.
func Link(number, message string) string {
	digits := NormalizeNumber(number)
	if digits == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}
