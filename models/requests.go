// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileInput is the body of a profile creation request.
type ProfileInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
	IsPrivate   bool   `json:"is_private"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
	IsLocked    *bool   `json:"is_locked,omitempty"`
}

// CardInput is the body of a card creation request.
type CardInput struct {
	ProfileUUID string `json:"profile_uuid"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPrivate   bool   `json:"is_private"`
}

// CardPatch is a partial card update. Nil fields are left untouched.
type CardPatch struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	IsPrivate *bool   `json:"is_private,omitempty"`
	IsLocked  *bool   `json:"is_locked,omitempty"`
}

// RelationInput creates or updates the edge between two profiles.
type RelationInput struct {
	FromProfileUUID string         `json:"from_profile_uuid"`
	ToProfileUUID   string         `json:"to_profile_uuid"`
	Status          RelationStatus `json:"status"`
}

// SubscriptionInput subscribes one of the caller's profiles to a card.
type SubscriptionInput struct {
	ProfileUUID string `json:"profile_uuid"`
	CardUUID    string `json:"card_uuid"`
}

// DeviceInput registers a push token for the caller.
type DeviceInput struct {
	DeviceToken string `json:"device_token"`
	Platform    string `json:"platform"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status   string            `json:"status"`
	Backends map[string]string `json:"backends"`
}
