package store

import "errors"

// Sentinel errors returned by the store to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned by the in-memory [VaultStore] item
	// operations when the target vault is not loaded, and by the vault
	// repository when no row matches the id for the user.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrInvalidItem is returned by the [VaultStore] item operations for a
	// nil item, including a typed nil such as (*models.Login)(nil).
	ErrInvalidItem = errors.New("invalid vault item")

	// ErrUserAlreadyExists is returned when a user with the same identity is
	// already registered with the backend.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultAlreadyExists is returned when a vault id collides with an
	// existing row.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the caller does not match the stored version,
	// meaning someone else has modified the vault since it was last listed.
	ErrVersionConflict = errors.New("vault version conflict occurred")

	// ErrUnsupportedDriver is returned for a database driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
