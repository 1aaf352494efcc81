package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "already contains")
}

// unwrapResult navigates the {status, result} wrapper the database layer
// returns and yields the raw record rows.
func unwrapResult(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	if resp, ok := result[0].(map[string]interface{}); ok {
		if rows, ok := resp["result"].([]interface{}); ok {
			return rows
		}
	}
	return result
}

// recordRow asserts a single row into a field map.
func recordRow(row interface{}) (map[string]interface{}, error) {
	data, ok := row.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// recordID converts a SurrealDB record ID (which may arrive as a string, a
// models.RecordID, or a raw map) to the canonical "table:id" string form.
func recordID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
		return ""
	case map[string]interface{}:
		tb, _ := v["tb"].(string)
		if tb == "" {
			tb, _ = v["Table"].(string)
		}
		idPart := ""
		if inner, ok := v["id"]; ok {
			idPart = recordID(inner)
		} else if inner, ok := v["ID"]; ok {
			idPart = recordID(inner)
		}
		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		return idPart
	}
	return fmt.Sprintf("%v", id)
}

// Field extraction helpers. SurrealDB responses arrive as loosely typed maps;
// these keep the per-entity parsers short.

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getStringPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v))
	for _, item := range v {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getRecordID reads a record-link field.
func getRecordID(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		return recordID(v)
	}
	return ""
}

// getRecordIDSlice reads a list of record links.
func getRecordIDSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v))
	for _, item := range v {
		if id := recordID(item); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// getRecordIDPtr reads an optional record-link field.
func getRecordIDPtr(m map[string]interface{}, key string) *string {
	if v, ok := m[key]; ok && v != nil {
		if id := recordID(v); id != "" {
			return &id
		}
	}
	return nil
}

// nilIfEmpty maps "" to nil so optional fields persist as NONE.
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// ptrOrNil maps a nil string pointer to nil.
func ptrOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// emptyIfNil keeps list fields as [] rather than NONE in storage.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
