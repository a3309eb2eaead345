package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is how created_at columns are written.
const timeLayout = "2006-01-02 15:04:05"

var readLayouts = []string{
	timeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02",
}

// sqliteTime scans DATETIME columns whether the driver hands back a
// time.Time or the raw text.
type sqliteTime struct {
	Time time.Time
}

func (t *sqliteTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v.UTC()
	case int64:
		t.Time = time.Unix(v, 0).UTC()
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
	return nil
}

func (t *sqliteTime) parse(s string) error {
	for _, layout := range readLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// nullable turns a typed nil pointer into an untyped nil for query builders.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
