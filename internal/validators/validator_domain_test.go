// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-db-journal/models"
	"github.com/stretchr/testify/assert"
)

const (
	uuidA = "0190f5b2-7c1e-7a3b-9d4f-1a2b3c4d5e6f"
	uuidB = "0190f5b2-7c1e-7a3b-9d4f-6f5e4d3c2b1a"
)

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

func TestDomainValidator_ProfileInput(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.ProfileInput
		want  error
	}{
		{"valid", models.ProfileInput{Name: "Alice", Email: "alice@example.com", AvatarURL: "https://cdn.example.com/a.png"}, nil},
		{"only name", models.ProfileInput{Name: "Alice"}, nil},
		{"blank name", models.ProfileInput{Name: "   "}, ErrInvalidName},
		{"long name", models.ProfileInput{Name: strings.Repeat("a", 256)}, ErrInvalidName},
		{"bad email", models.ProfileInput{Name: "Alice", Email: "alice"}, ErrInvalidEmail},
		{"named email", models.ProfileInput{Name: "Alice", Email: "Alice <alice@example.com>"}, ErrInvalidEmail},
		{"relative avatar", models.ProfileInput{Name: "Alice", AvatarURL: "/a.png"}, ErrInvalidAvatarURL},
		{"ftp avatar", models.ProfileInput{Name: "Alice", AvatarURL: "ftp://host/a.png"}, ErrInvalidAvatarURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			// pointer form goes through the same rules
			assert.ErrorIs(t, v.Validate(ctx, &tt.input), tt.want)
		})
	}
}

func TestDomainValidator_ProfilePatch(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ProfilePatch{Description: ptr("")}))
	assert.NoError(t, v.Validate(ctx, models.ProfilePatch{Email: ptr("")}), "clearing the email is allowed")
	assert.NoError(t, v.Validate(ctx, models.ProfilePatch{IsLocked: ptr(true)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Name: ptr("")}), ErrInvalidName)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{Email: ptr("nope")}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.ProfilePatch{AvatarURL: ptr("nope")}), ErrInvalidAvatarURL)
}

// ---------------------------------------------------------------------------
// Cards
// ---------------------------------------------------------------------------

func TestDomainValidator_Card(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CardInput{ProfileUUID: uuidA, Title: "hello"}))
	assert.ErrorIs(t, v.Validate(ctx, models.CardInput{ProfileUUID: "10", Title: "hello"}), ErrInvalidProfileUUID)
	assert.ErrorIs(t, v.Validate(ctx, models.CardInput{ProfileUUID: uuidA}), ErrInvalidTitle)

	assert.ErrorIs(t, v.Validate(ctx, models.CardPatch{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, &models.CardPatch{Content: ptr("")}))
	assert.ErrorIs(t, v.Validate(ctx, models.CardPatch{Title: ptr(" ")}), ErrInvalidTitle)
}

// ---------------------------------------------------------------------------
// Relations, subscriptions, devices
// ---------------------------------------------------------------------------

func TestDomainValidator_Relation(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RelationInput{FromProfileUUID: uuidA, ToProfileUUID: uuidB}))
	assert.NoError(t, v.Validate(ctx, models.RelationInput{FromProfileUUID: uuidA, ToProfileUUID: uuidB, Status: models.RelationBlock}))
	assert.ErrorIs(t, v.Validate(ctx, models.RelationInput{FromProfileUUID: uuidA, ToProfileUUID: uuidA}), ErrSelfRelation)
	assert.ErrorIs(t, v.Validate(ctx, models.RelationInput{FromProfileUUID: uuidA, ToProfileUUID: "x"}), ErrInvalidProfileUUID)
	assert.ErrorIs(t, v.Validate(ctx, models.RelationInput{FromProfileUUID: uuidA, ToProfileUUID: uuidB, Status: "LIKE"}), ErrInvalidStatus)
}

func TestDomainValidator_Subscription(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SubscriptionInput{ProfileUUID: uuidA, CardUUID: uuidB}))
	assert.ErrorIs(t, v.Validate(ctx, models.SubscriptionInput{ProfileUUID: "", CardUUID: uuidB}), ErrInvalidProfileUUID)
	assert.ErrorIs(t, v.Validate(ctx, models.SubscriptionInput{ProfileUUID: uuidA, CardUUID: "5"}), ErrInvalidCardUUID)
}

func TestDomainValidator_Device(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeviceInput{DeviceToken: "apns:abc"}))
	assert.ErrorIs(t, v.Validate(ctx, models.DeviceInput{DeviceToken: "  "}), ErrInvalidDeviceToken)
	assert.ErrorIs(t, v.Validate(ctx, models.DeviceInput{DeviceToken: strings.Repeat("t", 513)}), ErrInvalidDeviceToken)
}

// ---------------------------------------------------------------------------
// Field scoping
// ---------------------------------------------------------------------------

func TestDomainValidator_FieldScoping(t *testing.T) {
	v := NewDomainValidator()
	ctx := context.Background()

	// only the email is checked, the blank name is ignored
	assert.NoError(t, v.Validate(ctx, models.ProfileInput{Email: "a@b.co"}, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, models.ProfileInput{}, FieldTitle), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}
