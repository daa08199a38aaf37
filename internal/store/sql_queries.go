package store

// Fixed SQL used by the repositories. The schema is created by the goose
// migrations embedded in the migrations package.
const (
	queryGetRegistrationState = `
		SELECT kind, client_id, version
		FROM registration_state
		WHERE user_id = ?`

	queryPutRegistrationState = `
		INSERT INTO registration_state (user_id, kind, client_id, version, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			kind       = excluded.kind,
			client_id  = excluded.client_id,
			version    = excluded.version,
			updated_at = excluded.updated_at`

	queryDeleteClientsByUser = `
		DELETE FROM clients
		WHERE user_id = ?`

	queryInsertClient = `
		INSERT INTO clients (id, user_id, label, model, fingerprint, registered_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	queryListClientsByUser = `
		SELECT id, user_id, label, model, fingerprint, registered_at
		FROM clients
		WHERE user_id = ?
		ORDER BY registered_at, id`

	queryDeleteClient = `
		DELETE FROM clients
		WHERE user_id = ? AND id = ?`

	queryGetAccount = `
		SELECT user_id, handle, email, team_id, password, created_at
		FROM accounts
		WHERE user_id = ?`

	querySaveAccount = `
		INSERT INTO accounts (user_id, handle, email, team_id, password, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			handle   = excluded.handle,
			email    = excluded.email,
			team_id  = excluded.team_id,
			password = excluded.password`
)
