package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type MockModel struct {
	ID    int64  `db:"id" readOnly:"true"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (m MockModel) TableName() string {
	return "mock_models"
}

func (m MockModel) GetID() int64 {
	return m.ID
}

func (m MockModel) EmptySlice() interface{} {
	return &[]MockModel{}
}

func TestGetValsFromModel(t *testing.T) {
	model := MockModel{
		ID:    1,
		Name:  "Test",
		Email: "example@email.com",
	}

	vals := GetValsFromModel(model)
	expectedVals := []interface{}{"Test", "example@email.com"}

	assert.Equal(t, expectedVals, vals)
}

func TestGetColumnNames(t *testing.T) {
	m := MockModel{}

	assert.Equal(t, []string{"name", "email"}, GetColumnNames(m, true))
	assert.Equal(t, []string{"id", "name", "email"}, GetColumnNames(m, false))
}

func TestScanRowToModel(t *testing.T) {
	model := &MockModel{}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Test", "example@email.com")

	mock.ExpectQuery("SELECT \\* FROM mock_models WHERE id = \\?").WillReturnRows(rows)
	row := db.QueryRow("SELECT * FROM mock_models WHERE id = ?", 1)

	err = ScanRowToModel(model, row)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), model.ID)
	assert.Equal(t, "Test", model.Name)
	assert.Equal(t, "example@email.com", model.Email)
}

func TestScanRowsToSliceOfModels(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "First", "first@email.com").
		AddRow(2, "Second", "second@email.com")

	mock.ExpectQuery("SELECT \\* FROM mock_models").WillReturnRows(rows)
	result, err := db.Query("SELECT * FROM mock_models")
	assert.NoError(t, err)
	defer result.Close()

	slice, err := ScanRowsToSliceOfModels(MockModel{}, result, 5)
	assert.NoError(t, err)

	scanned := *(slice.(*[]MockModel))
	assert.Len(t, scanned, 2)
	assert.Equal(t, "First", scanned[0].Name)
	assert.Equal(t, int64(2), scanned[1].ID)
	assert.Equal(t, "second@email.com", scanned[1].Email)
}
