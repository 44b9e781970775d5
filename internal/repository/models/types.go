package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"careerforge/internal/domain"
)

// StringSlice stores a []string as a JSON text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytesToParse, err := bytesForScan(value, "StringSlice")
	if err != nil {
		return err
	}
	if bytesToParse == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// SalaryRangeSlice stores []domain.SalaryRange as a JSON text column.
type SalaryRangeSlice []domain.SalaryRange

// Value implements the driver.Valuer interface
func (s SalaryRangeSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *SalaryRangeSlice) Scan(value interface{}) error {
	bytesToParse, err := bytesForScan(value, "SalaryRangeSlice")
	if err != nil {
		return err
	}
	if bytesToParse == nil {
		*s = SalaryRangeSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// QuestionResultSlice stores []domain.QuestionResult as a JSON text column.
type QuestionResultSlice []domain.QuestionResult

// Value implements the driver.Valuer interface
func (q QuestionResultSlice) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionResultSlice) Scan(value interface{}) error {
	bytesToParse, err := bytesForScan(value, "QuestionResultSlice")
	if err != nil {
		return err
	}
	if bytesToParse == nil {
		*q = QuestionResultSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

// bytesForScan normalizes driver values for the JSON column types above.
// NULL, empty strings and the literal "null" all scan as an empty slice.
func bytesForScan(value interface{}, typeName string) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return nil, fmt.Errorf("%s Scan: unsupported type %T", typeName, value)
	}

	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}
	return b, nil
}
