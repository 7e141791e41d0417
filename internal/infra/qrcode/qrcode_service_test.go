package qrcode

import (
	"encoding/json"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
		Auth:   &config.AuthConfig{Secret: "test-secret"},
	}).(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateCheckInQR(t *testing.T) {
	svc := newTestService(256, "M")

	qrBytes, err := svc.GenerateCheckInQR("6650f0c2a1b2c3d4e5f60718", "6650f0c2a1b2c3d4e5f60719")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseCheckInQR(t *testing.T) {
	svc := newTestService(256, "M")

	valid, err := svc.encode("e1", "u1")
	require.NoError(t, err)

	payload, err := svc.ParseCheckInQR(valid)
	require.NoError(t, err)
	assert.Equal(t, "e1", payload.EventID)
	assert.Equal(t, "u1", payload.UserID)

	forged, err := json.Marshal(service.CheckInPayload{EventID: "e1", UserID: "u2", Type: "checkin", Signature: payload.Signature})
	require.NoError(t, err)

	other := NewQRCodeService(&config.Config{Auth: &config.AuthConfig{Secret: "other"}}).(*qrcodeService)
	foreign, err := other.encode("e1", "u1")
	require.NoError(t, err)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "hello"},
		{"wrong type", `{"event_id":"e1","user_id":"u1","type":"subscription"}`},
		{"missing user", `{"event_id":"e1","type":"checkin"}`},
		{"unsigned", `{"event_id":"e1","user_id":"u1","type":"checkin"}`},
		{"signature of another user", string(forged)},
		{"signed with another key", foreign},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseCheckInQR(tt.data)

			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}
