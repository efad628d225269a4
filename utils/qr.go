package utils

import "github.com/skip2/go-qrcode"

// GenerateQRCode returns a PNG of the given content, size x size pixels.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
