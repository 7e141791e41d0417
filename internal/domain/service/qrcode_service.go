package service

// CheckInPayload is what an attendee's check-in QR code encodes.
type CheckInPayload struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Signature string `json:"sig"` // HMAC over the other fields.
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheckInQR renders a PNG QR code identifying a registration.
	GenerateCheckInQR(eventID, userID string) ([]byte, error)

	// ParseCheckInQR decodes the scanned QR payload and verifies its signature.
	ParseCheckInQR(qrData string) (*CheckInPayload, error)
}
