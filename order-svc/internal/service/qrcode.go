package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes the link a restaurant scans when the bag is picked up.
func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := g.BaseURL + "/pickup.html?order_id=" + url.QueryEscape(orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
