package repository

import (
	"database/sql"
	"eventboard/data/models"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type DBRepo interface {
	Connection() *sql.DB
	RunMigrations(dbName string) error
	VerifyConstraintMap() error

	CreateUser(username, email, password string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetUserByID(id int64) (models.User, error)
	QueryUsers(f *models.UserFilter) ([]models.User, error)
	UpdateUser(id int64, upd models.UserUpdate) (models.User, error)
	DeleteUser(id int64) (int64, error)

	CreateEvent(e models.Event) (models.Event, error)
	GetEventByID(id int64) (models.Event, error)
	QueryEvents(f *models.EventFilter) ([]models.Event, error)
	QueryEventsForViewer(f *models.EventFilter, viewerID int64) ([]models.EventWithLikeStatus, error)
	UpdateEvent(id int64, upd models.EventUpdate) (models.Event, error)
	DeleteEvent(id int64) (int64, error)

	CreateLike(userID, eventID int64) (models.Like, error)
	QueryLikes(f *models.LikeFilter) ([]models.Like, error)
	DeleteLike(id int64) (int64, error)
	DeleteLikesByUser(userID int64) (int64, error)
	EventLikedByUser(userID, eventID int64) (bool, error)
	QueryLikedEvents(userID int64) ([]models.EventWithLikeStatus, error)
}

// SqlRepo holds the pooled connection; one statement per call, no state
// between calls. DefaultLimit bounds list reads when the caller supplies no
// limit (falls back to defaultQueryLimit when zero).
type SqlRepo struct {
	DB           *sql.DB
	DefaultLimit int
}

func (sr *SqlRepo) Connection() *sql.DB {
	return sr.DB
}

func (sr *SqlRepo) RunMigrations(dbName string) error {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("failed to get current file path")
	}

	dir := filepath.Dir(filename)
	migrationsDir := filepath.Join(dir, "../migrations")
	// Convert backslashes to forward slashes for Windows compatibility
	migrationsDir = strings.ReplaceAll(migrationsDir, "\\", "/")

	log.Printf("Resolved migrations directory: %s", migrationsDir)

	driver, err := pgx.WithInstance(sr.DB, &pgx.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsDir, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	log.Println("Migrations complete")
	return nil
}

// create inserts a model and scans the persisted row, generated fields
// included, into dest. dest must be a pointer to the same model type.
func (sr *SqlRepo) create(m models.Model, dest models.Model) error {
	vals := models.GetValsFromModel(m)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		m.TableName(),
		strings.Join(models.GetColumnNames(m, true), ", "),
		placeholders(len(vals)))

	stmt, err := sr.DB.Prepare(query)
	if err != nil {
		return fmt.Errorf("error preparing query: %v", err)
	}
	defer stmt.Close()

	row := stmt.QueryRow(vals...)
	return models.ScanRowToModel(dest, row)
}

// deleteByID removes a single row and reports how many rows went away. Zero
// is not an error here; the caller decides what an empty delete means.
func (sr *SqlRepo) deleteByID(table string, id int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	res, err := sr.DB.Exec(query, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting record: %v", err)
	}
	return rowsAffected(res)
}

// GetModelByID retrieves a model from the db by its ID and returns it. The
// model must be passed as a pointer to the desired model type.
func (sr *SqlRepo) GetModelByID(m models.Model, id int64) (models.Model, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", m.TableName())
	r := sr.DB.QueryRow(query, id)

	if err := models.ScanRowToModel(m, r); err != nil {
		return nil, err
	}
	return m, nil
}

// buildUpdateQuery assembles a partial update from the populated fields only.
// Callers must ensure sets is non-empty.
func buildUpdateQuery(table string, sets []condition, id int64) (string, []interface{}) {
	setClause := make([]string, len(sets))
	values := make([]interface{}, 0, len(sets)+1)

	for i, s := range sets {
		setClause[i] = fmt.Sprintf("%s = $%d", s.column, i+1)
		values = append(values, s.value)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		table,
		strings.Join(setClause, ", "),
		len(sets)+1)
	values = append(values, id)

	return query, values
}

func placeholders(n int) string {
	ph := make([]string, n)
	for i := 1; i <= n; i++ {
		ph[i-1] = fmt.Sprintf("$%d", i)
	}
	return strings.Join(ph, ", ")
}
