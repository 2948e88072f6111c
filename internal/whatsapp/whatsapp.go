// Package whatsapp renders the buyer-contact messages and builds wa.me deep
// links. Everything here is pure string work; handlers feed it already-loaded
// records.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// ProductMessage is the full interest message shown on catalog cards. Field
// order is fixed; the emoji are literal content.
func ProductMessage(productName, price, description, sellerName, catalogURL string) string {
	return fmt.Sprintf(`🛍️ *Interesse em produto*

📦 *Produto:* %s
💰 *Preço:* R$ %s
📋 *Descrição:* %s

👋 Olá %s! Vi este produto no seu catálogo e tenho interesse. Podemos conversar?

🔗 Catálogo: %s`, productName, price, description, sellerName, catalogURL)
}

// DetailMessage is the short variant used on the product detail page.
func DetailMessage(sellerName, productName string) string {
	return fmt.Sprintf("Olá %s, tenho interesse no produto %q.", sellerName, productName)
}

// Link builds the wa.me deep link. With a phone the chat opens directly with
// the seller; without one WhatsApp lets the buyer pick a contact.
func Link(countryCode, phone, message string) string {
	digits := onlyDigits(phone)
	if digits == "" {
		return "https://wa.me/?text=" + encode(message)
	}
	return "https://wa.me/" + countryCode + digits + "?text=" + encode(message)
}

// encode percent-encodes a query value. QueryEscape's '+' for spaces is
// rewritten so the result is strict percent-encoding and survives emoji and
// newlines in any decoder.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
