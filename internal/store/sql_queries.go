package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql is the squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	profileColumns = []string{
		"id", "uuid", "user_id", "name", "email", "description", "avatar_url",
		"is_private", "is_locked", "deleted_at", "commit_id", "created_at", "modified_at",
	}
	cardColumns = []string{
		"id", "uuid", "profile_uuid", "user_id", "title", "content",
		"is_private", "is_locked", "deleted_at", "commit_id", "created_at", "modified_at",
	}
	relationColumns = []string{
		"id", "uuid", "user_id", "from_profile_uuid", "to_profile_uuid",
		"from_user_id", "to_user_id", "status", "commit_id", "created_at", "modified_at",
	}
	subscriptionColumns = []string{
		"id", "uuid", "user_id", "profile_uuid", "card_uuid", "card_owner_id",
		"commit_id", "created_at", "modified_at",
	}
)

// qualified prefixes every column with alias.
func qualified(alias string, columns []string) string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return strings.Join(out, ", ")
}

const (
	selectFollowerUserIDs = `SELECT DISTINCT from_user_id
		FROM profile_relations
		WHERE to_user_id = $1;`

	selectCardSubscriberUserIDs = `SELECT DISTINCT user_id
		FROM card_subscriptions
		WHERE card_owner_id = $1;`

	upsertDeviceSession = `INSERT INTO device_sessions (user_id, device_token, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_token) DO UPDATE
		SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform, revoked_at = NULL;`

	revokeDeviceSession = `UPDATE device_sessions
		SET revoked_at = NOW()
		WHERE user_id = $1 AND device_token = $2 AND revoked_at IS NULL;`
)

// Seed queries select every row user $1 is entitled to see offline. Locked
// and soft-deleted rows are excluded, and rows are only included when every
// row they reference is included as well.
var (
	seedProfiles = `SELECT ` + qualified("p", profileColumns) + `
		FROM profiles p
		WHERE p.is_locked = FALSE AND p.deleted_at IS NULL
		  AND (p.user_id = $1
		    OR p.uuid IN (SELECT r.to_profile_uuid FROM profile_relations r WHERE r.from_user_id = $1)
		    OR p.uuid IN (SELECT c.profile_uuid
		                  FROM card_subscriptions s
		                  JOIN cards c ON c.uuid = s.card_uuid
		                  WHERE s.user_id = $1 AND c.is_locked = FALSE AND c.deleted_at IS NULL))
		ORDER BY p.id;`

	seedCards = `SELECT ` + qualified("c", cardColumns) + `
		FROM cards c
		JOIN profiles p ON p.uuid = c.profile_uuid
		WHERE c.is_locked = FALSE AND c.deleted_at IS NULL
		  AND p.is_locked = FALSE AND p.deleted_at IS NULL
		  AND (c.user_id = $1
		    OR c.uuid IN (SELECT s.card_uuid FROM card_subscriptions s WHERE s.user_id = $1))
		ORDER BY c.id;`

	seedRelations = `SELECT ` + qualified("r", relationColumns) + `
		FROM profile_relations r
		JOIN profiles f ON f.uuid = r.from_profile_uuid
		JOIN profiles t ON t.uuid = r.to_profile_uuid
		WHERE r.from_user_id = $1
		  AND f.is_locked = FALSE AND f.deleted_at IS NULL
		  AND t.is_locked = FALSE AND t.deleted_at IS NULL
		ORDER BY r.id;`

	seedSubscriptions = `SELECT ` + qualified("s", subscriptionColumns) + `
		FROM card_subscriptions s
		JOIN cards c ON c.uuid = s.card_uuid
		JOIN profiles cp ON cp.uuid = c.profile_uuid
		JOIN profiles sp ON sp.uuid = s.profile_uuid
		WHERE s.user_id = $1
		  AND c.is_locked = FALSE AND c.deleted_at IS NULL
		  AND cp.is_locked = FALSE AND cp.deleted_at IS NULL
		  AND sp.is_locked = FALSE AND sp.deleted_at IS NULL
		ORDER BY s.id;`
)
