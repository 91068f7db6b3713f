package sqldb

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL engine behind a Store.
type Dialect string

// Supported dialects.
const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// ParseDialect validates a configured driver name.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case Postgres, MySQL, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unknown sql driver %q (want postgres, mysql or sqlite)", s)
	}
}

// driverName is the database/sql driver registered for the dialect.
func (d Dialect) driverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case MySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// gooseDialect is the dialect name understood by goose.
func (d Dialect) gooseDialect() string {
	switch d {
	case Postgres:
		return "postgres"
	case MySQL:
		return "mysql"
	default:
		return "sqlite3"
	}
}

// ExactMatch returns a predicate comparing col to one '?' argument byte for byte.
// MySQL's default collations fold case and accents, so the comparison is forced
// to the binary collation there.
func (d Dialect) ExactMatch(col string) string {
	if d == MySQL {
		return col + " COLLATE utf8mb4_bin = ?"
	}
	return col + " = ?"
}

// migrationsDir is the embedded directory holding the dialect's goose migrations.
func (d Dialect) migrationsDir() string {
	if d == MySQL {
		return "migrations/mysql"
	}
	return "migrations"
}

// Rebind rewrites '?' placeholders into the dialect's bind style.
// Queries are written with '?' everywhere; postgres needs $1..$n.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// UpsertClause returns the conflict clause that turns an INSERT on the given key
// into an update of cols.
func (d Dialect) UpsertClause(key string, cols ...string) string {
	sets := make([]string, len(cols))
	if d == MySQL {
		for i, c := range cols {
			sets[i] = fmt.Sprintf("%s = VALUES(%s)", c, c)
		}
		return "ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	}
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = excluded.%s", c, c)
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}
