// Package qrcode renders and reads the check-in QR codes attendees show at the door.
package qrcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	checkInType = "checkin"
	defaultSize = 256
)

// ErrInvalidPayload is returned when scanned data is not a check-in code.
var ErrInvalidPayload = errors.New("invalid check-in QR payload")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	key                  []byte
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	var key []byte
	if cfg.Auth != nil {
		key = []byte(cfg.Auth.Secret)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		key:                  key,
	}
}

func (s *qrcodeService) sign(payload *service.CheckInPayload) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload.Type + "|" + payload.EventID + "|" + payload.UserID))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// encode returns the signed text a check-in QR code carries.
func (s *qrcodeService) encode(eventID, userID string) (string, error) {
	payload := service.CheckInPayload{EventID: eventID, UserID: userID, Type: checkInType}
	payload.Signature = s.sign(&payload)

	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckInQR renders the check-in code of userID for eventID as PNG.
func (s *qrcodeService) GenerateCheckInQR(eventID, userID string) ([]byte, error) {
	data, err := s.encode(eventID, userID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(data, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInQR decodes scanned data and checks it is a complete check-in
// code signed with this service's key.
func (s *qrcodeService) ParseCheckInQR(qrData string) (*service.CheckInPayload, error) {
	var payload service.CheckInPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if payload.Type != checkInType {
		return nil, errors.Wrapf(ErrInvalidPayload, "unexpected type %q", payload.Type)
	}
	if payload.EventID == "" || payload.UserID == "" {
		return nil, errors.Wrap(ErrInvalidPayload, "event and user are required")
	}
	if !hmac.Equal([]byte(payload.Signature), []byte(s.sign(&payload))) {
		return nil, errors.Wrap(ErrInvalidPayload, "signature mismatch")
	}

	return &payload, nil
}
