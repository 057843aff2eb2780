package repository

import (
	"database/sql"
	"errors"
	"eventboard/data/models"
	"fmt"
	"log"
)

// ErrInvalidCredentials covers both a missing user and a wrong password; the
// caller cannot tell which. The distinction is logged locally only.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CreateUser hashes the password and inserts the user. Only the hash is ever
// persisted. Duplicate username/email come back as their domain errors.
func (sr *SqlRepo) CreateUser(username, email, password string) (models.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %v", err)
	}

	u := models.User{
		Username: username,
		Email:    email,
		Hash:     hash,
	}

	var created models.User
	if err := sr.create(u, &created); err != nil {
		return models.User{}, classifyError(err)
	}
	return created, nil
}

// Authenticate fetches the user by email and verifies the password against
// the stored hash. Every failure path returns ErrInvalidCredentials.
func (sr *SqlRepo) Authenticate(email, password string) (models.User, error) {
	var u models.User
	row := sr.DB.QueryRow("SELECT * FROM users WHERE email = $1", email)
	if err := models.ScanRowToModel(&u, row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("login attempt for %q failed: no such user", email)
		} else {
			log.Printf("login attempt for %q failed: %v", email, err)
		}
		return models.User{}, ErrInvalidCredentials
	}

	if !VerifyPassword(u.Hash, password) {
		log.Printf("login attempt for %q failed: password doesn't match", email)
		return models.User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (sr *SqlRepo) GetUserByID(id int64) (models.User, error) {
	model, err := sr.GetModelByID(&models.User{}, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}

	user, ok := model.(*models.User)
	if !ok {
		return models.User{}, fmt.Errorf("type assertion to User failed")
	}

	return *user, nil
}

func (sr *SqlRepo) QueryUsers(f *models.UserFilter) ([]models.User, error) {
	var conds []condition
	var limit int
	if f != nil {
		conds = userConditions(f)
		limit = sr.limitFor(f.Limit)
	} else {
		// no specification at all: default unfiltered read, same bound
		limit = sr.limitFor(nil)
	}

	query, vals := buildListQuery("users", conds, limit)
	rows, err := sr.DB.Query(query, vals...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %v", err)
	}
	defer rows.Close()

	slice, err := models.ScanRowsToSliceOfModels(models.User{}, rows, limit)
	if err != nil {
		return nil, err
	}
	return *(slice.(*[]models.User)), nil
}

// UpdateUser applies only the fields present in upd. Absent fields keep
// their stored values; the password cannot be touched here at all.
func (sr *SqlRepo) UpdateUser(id int64, upd models.UserUpdate) (models.User, error) {
	var sets []condition
	if upd.Username != nil {
		sets = append(sets, condition{"username", *upd.Username})
	}
	if upd.Email != nil {
		sets = append(sets, condition{"email", *upd.Email})
	}
	if upd.Image != nil {
		sets = append(sets, condition{"image", *upd.Image})
	}

	if len(sets) == 0 {
		return sr.GetUserByID(id)
	}

	query, vals := buildUpdateQuery("users", sets, id)
	var updated models.User
	row := sr.DB.QueryRow(query, vals...)
	if err := models.ScanRowToModel(&updated, row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, classifyError(err)
	}
	return updated, nil
}

func (sr *SqlRepo) DeleteUser(id int64) (int64, error) {
	return sr.deleteByID("users", id)
}
