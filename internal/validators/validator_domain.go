package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
)

type DomainValidator struct {
}

func NewDomainValidator() Validator {
	return &DomainValidator{}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProfileInput:
		return v.validateProfileInput(value, fields...)
	case *models.ProfileInput:
		return v.validateProfileInput(*value, fields...)

	case models.ProfilePatch:
		return v.validateProfilePatch(value, fields...)
	case *models.ProfilePatch:
		return v.validateProfilePatch(*value, fields...)

	case models.CardInput:
		return v.validateCardInput(value, fields...)
	case *models.CardInput:
		return v.validateCardInput(*value, fields...)

	case models.CardPatch:
		return v.validateCardPatch(value, fields...)
	case *models.CardPatch:
		return v.validateCardPatch(*value, fields...)

	case models.RelationInput:
		return v.validateRelationInput(value, fields...)
	case *models.RelationInput:
		return v.validateRelationInput(*value, fields...)

	case models.SubscriptionInput:
		return v.validateSubscriptionInput(value, fields...)
	case *models.SubscriptionInput:
		return v.validateSubscriptionInput(*value, fields...)

	case models.DeviceInput:
		return v.validateDeviceInput(value, fields...)
	case *models.DeviceInput:
		return v.validateDeviceInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateProfileInput(in models.ProfileInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAvatarURL}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !validName(in.Name) {
				return ErrInvalidName
			}
		case FieldEmail:
			if in.Email != "" && !validEmail(in.Email) {
				return ErrInvalidEmail
			}
		case FieldAvatarURL:
			if in.AvatarURL != "" && !validHTTPURL(in.AvatarURL) {
				return ErrInvalidAvatarURL
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateProfilePatch(p models.ProfilePatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldName, FieldEmail, FieldAvatarURL}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if p.Name == nil && p.Email == nil && p.Description == nil && p.AvatarURL == nil &&
				p.IsPrivate == nil && p.IsLocked == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if p.Name != nil && !validName(*p.Name) {
				return ErrInvalidName
			}
		case FieldEmail:
			if p.Email != nil && *p.Email != "" && !validEmail(*p.Email) {
				return ErrInvalidEmail
			}
		case FieldAvatarURL:
			if p.AvatarURL != nil && *p.AvatarURL != "" && !validHTTPURL(*p.AvatarURL) {
				return ErrInvalidAvatarURL
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateCardInput(in models.CardInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileUUID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileUUID:
			if !utils.IsUUID(in.ProfileUUID) {
				return ErrInvalidProfileUUID
			}
		case FieldTitle:
			if !validName(in.Title) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateCardPatch(p models.CardPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatch, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldPatch:
			if p.Title == nil && p.Content == nil && p.IsPrivate == nil && p.IsLocked == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if p.Title != nil && !validName(*p.Title) {
				return ErrInvalidTitle
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateRelationInput(in models.RelationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRelationEnds, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldRelationEnds:
			if !utils.IsUUID(in.FromProfileUUID) || !utils.IsUUID(in.ToProfileUUID) {
				return ErrInvalidProfileUUID
			}
			if strings.EqualFold(in.FromProfileUUID, in.ToProfileUUID) {
				return ErrSelfRelation
			}
		case FieldStatus:
			if in.Status != "" && !in.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateSubscriptionInput(in models.SubscriptionInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProfileUUID, FieldCardUUID}
	}

	for _, f := range fields {
		switch f {
		case FieldProfileUUID:
			if !utils.IsUUID(in.ProfileUUID) {
				return ErrInvalidProfileUUID
			}
		case FieldCardUUID:
			if !utils.IsUUID(in.CardUUID) {
				return ErrInvalidCardUUID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *DomainValidator) validateDeviceInput(in models.DeviceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceToken}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceToken:
			token := strings.TrimSpace(in.DeviceToken)
			if token == "" || len(token) > maxTokenLength {
				return ErrInvalidDeviceToken
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= maxNameLength
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
