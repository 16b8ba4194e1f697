package database

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestClose(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	assert.NotPanics(t, func() {
		database.Close()
	})
}

func TestQuery(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	err = database.Execute("CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)")
	assert.NoError(t, err)
	err = database.Execute("INSERT INTO test (name) VALUES (?)", "test_name")
	assert.NoError(t, err)

	query := "SELECT * FROM test WHERE name = ?"
	result, err := database.Query(query, "test_name")
	assert.NoError(t, err)

	var rows []map[string]interface{}
	err = result.Scan(&rows).Error
	assert.NoError(t, err)

	assert.Len(t, rows, 1)
	assert.Equal(t, "test_name", rows[0]["name"])
}

func TestExecute(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	err = database.Execute("CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)")
	assert.NoError(t, err)

	err = database.Execute("INSERT INTO test (name) VALUES (?)", "another_name")
	assert.NoError(t, err)

	result, err := database.Query("SELECT COUNT(*) AS count FROM test")
	assert.NoError(t, err)

	var count int64
	err = result.Scan(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRunMigrations(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	err = RunMigrations(db)
	assert.NoError(t, err)
	assert.True(t, db.Migrator().HasTable("tasks"))
}

func TestQuery_SQLExpectations(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: gormDB}

	query := "SELECT title FROM tasks WHERE id = $1"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("Test Task"))

	result, err := database.Query(query, 1)
	assert.NoError(t, err)

	var title string
	assert.NoError(t, result.Scan(&title).Error)
	assert.Equal(t, "Test Task", title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
