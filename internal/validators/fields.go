package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the display name of a profile.
	FieldName = "name"

	// FieldEmail targets the optional contact email of a profile.
	FieldEmail = "email"

	// FieldAvatarURL targets the optional avatar link of a profile.
	FieldAvatarURL = "avatar_url"

	// FieldProfileUUID targets the profile a card or subscription is written from.
	FieldProfileUUID = "profile_uuid"

	// FieldCardUUID targets the card a subscription points at.
	FieldCardUUID = "card_uuid"

	// FieldTitle targets the title of a card.
	FieldTitle = "title"

	// FieldRelationEnds targets both ends of a relation, which must differ.
	FieldRelationEnds = "relation_ends"

	// FieldStatus targets the status of a relation. An empty status is
	// accepted and defaults to FOLLOW.
	FieldStatus = "status"

	// FieldDeviceToken targets the push token of a device registration.
	FieldDeviceToken = "device_token"

	// FieldPatch targets a partial update as a whole: at least one field
	// must be set.
	FieldPatch = "patch"
)

const (
	maxNameLength  = 255
	maxTokenLength = 512
)
