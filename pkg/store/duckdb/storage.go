package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProjectsTableSchema = `
	CREATE TABLE IF NOT EXISTS projects (
		name VARCHAR NOT NULL PRIMARY KEY,
		status VARCHAR NOT NULL,
		priority VARCHAR NOT NULL,
		npv DOUBLE NULL,
		risk_score DOUBLE NULL,
		wastage_pct DOUBLE NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const CalculationsTableSchema = `
	CREATE TABLE IF NOT EXISTS calculations (
		id VARCHAR NOT NULL,
		project VARCHAR NOT NULL,
		kind VARCHAR NOT NULL,
		payload JSON,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (project, id)
	);
`

var bootQueries = []string{
	ProjectsTableSchema,
	CalculationsTableSchema,
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
