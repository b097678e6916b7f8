package store

import "time"

// Meta is a parsed frontmatter block. Accessors return the zero value for
// missing keys and for values of the wrong type.
type Meta map[string]any

func (m Meta) GetString(key string) string {
	s, _ := m[key].(string)
	return s
}

func (m Meta) GetInt(key string) int {
	switch n := m[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func (m Meta) GetBool(key string) bool {
	b, _ := m[key].(bool)
	return b
}

// GetTime accepts both decoded timestamps and RFC 3339 strings.
func (m Meta) GetTime(key string) time.Time {
	switch t := m[key].(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// FormatTime is the timestamp layout stored in run frontmatter.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
