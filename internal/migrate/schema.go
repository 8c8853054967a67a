package migrate

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/exp/slices"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
)

// VacancyTableDDL builds the CREATE TABLE statement for a vacancy table with one TEXT column per name.
func VacancyTableDDL(table string, columns []string) (string, error) {
	if strings.TrimSpace(table) == "" {
		return "", errors.New("migrate: empty table name")
	}
	if len(columns) == 0 {
		return "", errors.New("migrate: no columns")
	}
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = pq.QuoteIdentifier(c) + " TEXT"
	}
	return "CREATE TABLE IF NOT EXISTS " + pq.QuoteIdentifier(table) + " (\n    " + strings.Join(defs, ",\n    ") + "\n)", nil
}

// EnsureVacancyTable creates table on first run. An existing table is left as is, columns included.
func EnsureVacancyTable(db *sql.DB, table string, columns []string) error {
	ddl, err := VacancyTableDDL(table, columns)
	if err != nil {
		return err
	}
	stmts := []string{
		ddl,
		"CREATE INDEX IF NOT EXISTS " + pq.QuoteIdentifier("idx_"+table+"_region") + " ON " + pq.QuoteIdentifier(table) +
			" (" + pq.QuoteIdentifier(dataset.ColProvince) + ", " + pq.QuoteIdentifier(dataset.ColDistrict) + ")",
	}
	if !slices.Contains(columns, dataset.ColProvince) || !slices.Contains(columns, dataset.ColDistrict) {
		stmts = stmts[:1]
	}
	for i, s := range stmts {
		logger.L().Debug("schema_exec", "idx", i, "table", table)
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	logger.L().Debug("schema_done", "table", table)
	return nil
}
