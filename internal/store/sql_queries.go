package store

// RETURNING clauses shared by the repositories. Both supported backends
// (PostgreSQL and SQLite 3.35+) understand RETURNING, which lets inserts
// and updates hand back the canonical database row in a single statement.
const (
	returningUserColumns = `RETURNING user_id, username, email, password_hash, display_name, bio, profile_picture_url, created_at`

	returningCheckColumns = `RETURNING id, user_id, name, count, created_at`
)
