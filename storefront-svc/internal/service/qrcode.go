package service

import (
	"fmt"
	"strings"

	"riko-storefront/storefront-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(payload string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// PaymentInstructions is the bank transfer text encoded in the payment QR.
func PaymentInstructions(c domain.Checkout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Banco: %s\n", c.Payment.Bank)
	if c.Payment.Holder != "" {
		fmt.Fprintf(&b, "Titular: %s\n", c.Payment.Holder)
	}
	fmt.Fprintf(&b, "Cuenta: %s\n", c.Payment.Account)
	if c.Payment.DocumentID != "" {
		fmt.Fprintf(&b, "Cédula: %s\n", c.Payment.DocumentID)
	}
	if c.Payment.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", c.Payment.Phone)
	}
	fmt.Fprintf(&b, "Monto: %.2f", c.Quote.Total)
	if c.Quote.LocalTotal > 0 {
		fmt.Fprintf(&b, " (moneda local: %.2f)", c.Quote.LocalTotal)
	}
	return b.String()
}
