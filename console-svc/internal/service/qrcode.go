package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// OrderQRGenerator renders the review link printed on an order receipt.
type OrderQRGenerator struct {
	BaseURL string
	Size    int
}

func NewOrderQRGenerator(baseURL string) OrderQRGenerator {
	return OrderQRGenerator{BaseURL: baseURL, Size: 256}
}

func (g OrderQRGenerator) Link(orderID int) string {
	return fmt.Sprintf("%s/review.html?check_id=%d", g.BaseURL, orderID)
}

func (g OrderQRGenerator) Generate(orderID int) ([]byte, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("invalid order id %d", orderID)
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, size)
}

var _ QRGenerator = OrderQRGenerator{}
