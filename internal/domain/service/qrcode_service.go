package service

// QRCodeService renders printable plant tags
type QRCodeService interface {
	// GeneratePlantTag returns a PNG QR code linking to the product page
	GeneratePlantTag(productID string) ([]byte, error)

	// ParsePlantTag extracts the product id from the encoded link
	ParsePlantTag(qrData string) (string, error)
}
