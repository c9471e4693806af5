// Package duck backs the table with an in-memory DuckDB database, loading
// a data file into a single "records" table and addressing rows by rowid.
package duck

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"cellier/entity"
)

const tableName = "records"

type Duck struct {
	db       *sql.DB
	logger   entity.Logger
	filter   entity.Filter
	sorts    []entity.Sort
	filename string
}

func New(lgr entity.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	dk = &Duck{
		db:     db,
		sorts:  []entity.Sort{},
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return dk.filename
}

// Load a csv, parquet, or json file into the records table
func (dk *Duck) Load(path string) (err error) {

	var reader string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		reader = "read_parquet"
	case ".json", ".ndjson", ".jsonl":
		reader = "read_json_auto"
	default:
		reader = "read_csv_auto"
	}

	query := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM %s('%s')", tableName, reader, path)
	_, err = dk.db.Exec(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path
	return
}

// SetView Filter and Sort(s)
func (dk *Duck) SetView(filter entity.Filter, sorts []entity.Sort) (err error) {
	dk.filter = filter
	dk.sorts = sorts
	return nil
}

// GetView fields and count
func (dk *Duck) GetView() (fields []entity.Field, count int, err error) {

	query := `SELECT column_name, data_type FROM information_schema.columns
	          WHERE table_name = ? ORDER BY ordinal_position`

	rows, err := dk.db.Query(query, tableName)
	if err != nil {
		err = errors.Wrapf(err, "failed to describe %s", tableName)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var name, dbType string
		err = rows.Scan(&name, &dbType)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan column description")
			return
		}

		fields = append(fields, entity.Field{
			Name: name,
			Type: colType(dbType),
		})
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", tableName, dk.whereClause())
	err = dk.db.QueryRow(countQuery).Scan(&count)
	err = errors.Wrapf(err, "failed to count rows")
	return
}

// GetPage of rows, rowid first so edits can address rows
func (dk *Duck) GetPage(offset, size int) (rows []entity.Row, err error) {

	query := fmt.Sprintf("SELECT rowid, * FROM %s %s %s LIMIT %d OFFSET %d",
		tableName, dk.whereClause(), dk.orderClause(), size, offset)

	result, err := dk.db.Query(query)
	if err != nil {
		err = errors.Wrapf(err, "failed to query rows")
		return
	}
	defer result.Close()

	names, err := result.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get column count")
		return
	}

	for result.Next() {
		vals := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}

		err = result.Scan(ptrs...)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		row := make(entity.Row, len(vals))
		for i, val := range vals {
			row[i] = entity.Value{Raw: val}
		}
		rows = append(rows, row)
	}

	return
}

// UpdateCell writes one committed edit by rowid
func (dk *Duck) UpdateCell(id, field string, value entity.Value) (err error) {

	rowid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		err = errors.Wrapf(err, "bad row id %s", id)
		return
	}

	query := fmt.Sprintf(`UPDATE %s SET "%s" = ? WHERE rowid = ?`, tableName, field)
	_, err = dk.db.Exec(query, value.Raw, rowid)
	err = errors.Wrapf(err, "failed to update %s for row %s", field, id)
	return
}

// unexported

// colType maps a duckdb type name onto a column type
func colType(dbType string) entity.ColType {

	dbType = strings.ToUpper(dbType)
	switch {
	case dbType == "BOOLEAN":
		return entity.Bool
	case dbType == "DATE":
		return entity.Date
	case strings.HasPrefix(dbType, "TIMESTAMP"):
		return entity.DateTime
	case strings.HasPrefix(dbType, "DECIMAL"),
		dbType == "TINYINT", dbType == "SMALLINT", dbType == "INTEGER",
		dbType == "BIGINT", dbType == "HUGEINT", dbType == "FLOAT",
		dbType == "REAL", dbType == "DOUBLE":
		return entity.Number
	default:
		return entity.Text
	}
}

// whereClause converts the view filter to a SQL WHERE clause
func (dk *Duck) whereClause() string {

	clause := filterExpr(dk.filter)
	if clause == "" {
		return ""
	}
	return "WHERE " + clause
}

// orderClause converts the view sorts to a SQL ORDER BY clause
func (dk *Duck) orderClause() string {

	if len(dk.sorts) == 0 {
		return ""
	}

	terms := make([]string, len(dk.sorts))
	for i, srt := range dk.sorts {
		dir := "ASC"
		if srt.Desc {
			dir = "DESC"
		}
		terms[i] = fmt.Sprintf(`"%s" %s`, srt.Field, dir)
	}
	return "ORDER BY " + strings.Join(terms, ", ")
}

// filterExpr recursively builds filter expression (without WHERE prefix)
func filterExpr(f entity.Filter) string {
	switch f.Op {
	case entity.Eq:
		return fmt.Sprintf("%s = '%v'", f.Field, f.Value)
	case entity.Ne:
		return fmt.Sprintf("%s != '%v'", f.Field, f.Value)
	case entity.Gt:
		return fmt.Sprintf("%s > %v", f.Field, f.Value)
	case entity.Gte:
		return fmt.Sprintf("%s >= %v", f.Field, f.Value)
	case entity.Lt:
		return fmt.Sprintf("%s < %v", f.Field, f.Value)
	case entity.Lte:
		return fmt.Sprintf("%s <= %v", f.Field, f.Value)
	case entity.Contains:
		return fmt.Sprintf("%s LIKE '%%%v%%'", f.Field, f.Value)
	case entity.And:
		return joinChildren(f.Children, " AND ")
	case entity.Or:
		return joinChildren(f.Children, " OR ")
	case entity.Not:
		if len(f.Children) > 0 {
			if expr := filterExpr(f.Children[0]); expr != "" {
				return "NOT (" + expr + ")"
			}
		}
		return ""
	default:
		return ""
	}
}

func joinChildren(children []entity.Filter, op string) string {

	var clauses []string
	for _, child := range children {
		if expr := filterExpr(child); expr != "" {
			clauses = append(clauses, expr)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, op) + ")"
}
