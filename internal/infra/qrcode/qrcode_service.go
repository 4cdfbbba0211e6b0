package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"vora/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// referenceType tags QR payloads that carry an order reference.
const referenceType = "order_reference"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Reference string `json:"reference"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// GenerateReferenceQR renders the order reference payload as a PNG image.
func (s *qrcodeService) GenerateReferenceQR(reference string) ([]byte, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("order reference is required")
	}

	jsonData, err := json.Marshal(QRCodeData{
		Reference: reference,
		Type:      referenceType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReferenceQR parses scanned QR data and returns the upper-cased order reference.
func (s *qrcodeService) ParseReferenceQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != referenceType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	reference := strings.ToUpper(strings.TrimSpace(data.Reference))
	if reference == "" {
		return "", fmt.Errorf("QR code carries no order reference")
	}

	return reference, nil
}
