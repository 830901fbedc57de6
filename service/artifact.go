package service

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// QRRenderer renders a pairing challenge as a PNG QR code data URL.
type QRRenderer struct{}

// NewQRRenderer creates a QRRenderer.
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// Render returns "data:image/png;base64,..." for the challenge.
func (QRRenderer) Render(challenge string) (string, error) {
	if challenge == "" {
		return "", NewBadParameterError("pairing challenge is empty", nil)
	}
	png, err := qrcode.Encode(challenge, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
