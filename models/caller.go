package models

import "time"

// Caller is the authenticated identity behind an API request, taken from
// its bearer token.
type Caller struct {
	UserID int64
	// DeviceID is the optional "device" claim naming the signed-in device.
	DeviceID  string
	ExpiresAt time.Time
}
