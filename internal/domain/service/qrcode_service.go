package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReferenceQR renders an order reference as a PNG QR code.
	GenerateReferenceQR(reference string) ([]byte, error)

	// ParseReferenceQR extracts the order reference from scanned QR payload.
	ParseReferenceQR(qrData string) (string, error)
}
