package sqlstore

import (
	"fmt"
	"strings"
)

// Table describes the relational shape of one entity. Column names are the
// exact (case-sensitive) names used in the schema and in the record's db tags.
type Table struct {
	Name    string
	Key     string
	Columns []string
}

func quote(ident string) string {
	return `"` + ident + `"`
}

func (t Table) quotedColumns() string {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quote(c)
	}
	return strings.Join(cols, ", ")
}

func (t Table) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", t.quotedColumns(), quote(t.Name))
}

func (t Table) selectWhereSQL(column string) string {
	return fmt.Sprintf("%s WHERE %s = ?", t.selectSQL(), quote(column))
}

func (t Table) insertSQL() string {
	params := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		params[i] = ":" + c
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(t.Name), t.quotedColumns(), strings.Join(params, ", "))
}

func (t Table) updateSQL() string {
	sets := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if c == t.Key {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = :%s", quote(c), c))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s",
		quote(t.Name), strings.Join(sets, ", "), quote(t.Key), t.Key)
}

func (t Table) deleteWhereSQL(column string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = ?", quote(t.Name), quote(column))
}
