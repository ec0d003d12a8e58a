package qrcode

import (
	"strings"

	"plantcare/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const productPathSegment = "/products/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a plant tag generator linking to baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePlantTag encodes <baseURL>/products/<id> as a PNG
func (s *qrcodeService) GeneratePlantTag(productID string) ([]byte, error) {
	if productID == "" {
		return nil, errors.New("product id is required")
	}

	qrCode, err := qrcode.New(s.productLink(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePlantTag returns the product id of a scanned plant tag link
func (s *qrcodeService) ParsePlantTag(qrData string) (string, error) {
	id, ok := strings.CutPrefix(strings.TrimSpace(qrData), s.baseURL+productPathSegment)
	if !ok {
		return "", errors.Errorf("not a plant tag link: %s", qrData)
	}
	if id == "" || strings.Contains(id, "/") {
		return "", errors.Errorf("invalid product id in plant tag: %q", id)
	}

	return id, nil
}

func (s *qrcodeService) productLink(productID string) string {
	return s.baseURL + productPathSegment + productID
}
