package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

// Domain error tags the boundary layer maps to field-tagged responses.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username has already been taken")
	ErrDuplicateEmail    = errors.New("email has already been taken")
	ErrNonExistentUser   = errors.New("user does not exist")
	ErrNonExistentEvent  = errors.New("event does not exist")
	ErrDuplicateLike     = errors.New("event already liked by user")
)

// constraintErrors is the stable mapping from schema constraint names to
// domain errors. The schema is the single source of truth for uniqueness and
// referential integrity; no pre-insert existence checks are performed, which
// avoids the race between a check and the write.
var constraintErrors = map[string]error{
	"users_username_key":         ErrDuplicateUsername,
	"users_email_key":            ErrDuplicateEmail,
	"events_userid_fkey":         ErrNonExistentUser,
	"likes_user_id_fkey":         ErrNonExistentUser,
	"likes_event_id_fkey":        ErrNonExistentEvent,
	"likes_user_id_event_id_key": ErrDuplicateLike,
}

// classifyError converts a driver constraint violation into its domain error.
// Unmapped errors pass through unchanged; callers log them in full and
// surface them generically.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return mapped
		}
		log.Printf("unmapped constraint violation %q: %v", pgErr.ConstraintName, err)
	}

	return err
}

// VerifyConstraintMap checks at startup that every constraint name the error
// classifier relies on exists in the live schema, so a schema drift shows up
// immediately instead of as misclassified errors at request time.
func (sr *SqlRepo) VerifyConstraintMap() error {
	names := make([]string, 0, len(constraintErrors))
	vals := make([]interface{}, 0, len(constraintErrors))
	for name := range constraintErrors {
		names = append(names, name)
		vals = append(vals, name)
	}

	query := fmt.Sprintf("SELECT conname FROM pg_constraint WHERE conname IN (%s)", placeholders(len(vals)))
	rows, err := sr.DB.Query(query, vals...)
	if err != nil {
		return fmt.Errorf("error querying pg_constraint: %v", err)
	}
	defer rows.Close()

	found := make(map[string]bool, len(names))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range names {
		if !found[name] {
			return fmt.Errorf("constraint %q is mapped to a domain error but missing from the schema", name)
		}
	}
	return nil
}

// rowsAffected drains the result of an Exec. A zero count is reported as-is;
// the caller decides whether that is an empty result or a problem.
func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %v", err)
	}
	return n, nil
}
