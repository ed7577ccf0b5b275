package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ReportsTableSchema = `
	CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		document JSON NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

const TemplatesTableSchema = `
	CREATE TABLE IF NOT EXISTS templates (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		description VARCHAR,
		snapshot JSON NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	ReportsTableSchema,
	TemplatesTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
