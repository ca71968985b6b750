package render

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// CTAQR encodes the landing-page CTA link as a QR code PNG, sent
// alongside the rendered document so the page owner can print/share it.
func CTAQR(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("render: qr encode: %w", err)
	}
	return png, nil
}
