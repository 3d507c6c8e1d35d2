package schema

// TableDefinitions contains the SQL statements creating the contact
// database tables. Statements are idempotent and ordered so foreign keys
// resolve.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(100) NOT NULL,
		email VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		comment TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT contacts_phone_key UNIQUE (phone)
	)`,
	// Partial unique index: NULL emails never collide, present emails must
	// be unique regardless of case. Named like a constraint so violation
	// errors map cleanly.
	`CREATE UNIQUE INDEX IF NOT EXISTS contacts_email_key
		ON contacts (LOWER(email)) WHERE email IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts (status)`,
	`CREATE TABLE IF NOT EXISTS segments (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contact_segments (
		contact_id UUID NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		segment_id UUID NOT NULL REFERENCES segments(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (contact_id, segment_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_segments_segment
		ON contact_segments (segment_id)`,
}
