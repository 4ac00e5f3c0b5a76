package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName        = errors.New("name is required and must be at most 255 characters")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidAvatarURL   = errors.New("avatar url must be an absolute http(s) url")
	ErrInvalidProfileUUID = errors.New("invalid profile uuid")
	ErrInvalidCardUUID    = errors.New("invalid card uuid")
	ErrInvalidTitle       = errors.New("title is required and must be at most 255 characters")
	ErrInvalidStatus      = errors.New("invalid relation status")
	ErrSelfRelation       = errors.New("a profile cannot relate to itself")
	ErrInvalidDeviceToken = errors.New("device token is required and must be at most 512 characters")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
