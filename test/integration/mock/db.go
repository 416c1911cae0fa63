package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/nutrition-tracker/backend/config"
	"github.com/nutrition-tracker/backend/internal/infra/db"
)

var once sync.Once
var dbMock *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a shared in-memory SQLite database and migrates models in the given order.
func NewDb(name string, models ...any) *Db {
	if dbMock == nil {
		once.Do(
			func() {
				dbMock = open(name, models)
			},
		)
	}

	return dbMock
}

func open(name string, models []any) *Db {
	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := database.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: database.DB(),
		models: models,
	}
}

// ClearDB deletes every row, children before parents so foreign keys hold.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(d.models[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
