package models

import (
	"testing"

	"careerforge/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal string
	}{
		{name: "nil slice", s: nil, wantVal: "[]"},
		{name: "empty slice", s: StringSlice{}, wantVal: "[]"},
		{name: "elements", s: StringSlice{"Go", "SQL"}, wantVal: `["Go","SQL"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := tt.s.Value()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantVal, val)
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "nil", input: nil, want: StringSlice{}},
		{name: "empty string", input: "", want: StringSlice{}},
		{name: "literal null", input: "null", want: StringSlice{}},
		{name: "json bytes", input: []byte(`["a","b"]`), want: StringSlice{"a", "b"}},
		{name: "json string", input: `["a"]`, want: StringSlice{"a"}},
		{name: "unsupported type", input: 42, wantErr: true},
		{name: "malformed json", input: "{not json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSalaryRangeSlice_RoundTrip(t *testing.T) {
	ranges := SalaryRangeSlice{
		{Role: "Backend Engineer", Min: 60000, Max: 120000, Median: 90000, Location: "Global"},
	}

	val, err := ranges.Value()
	assert.NoError(t, err)

	var scanned SalaryRangeSlice
	assert.NoError(t, scanned.Scan(val))
	assert.Equal(t, ranges, scanned)
}

func TestSalaryRangeSlice_ScanNull(t *testing.T) {
	var s SalaryRangeSlice
	assert.NoError(t, s.Scan(nil))
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestQuestionResultSlice_Scan(t *testing.T) {
	input := `[{"question":"Q1","answer":"A","userAnswer":"B","isCorrect":false,"explanation":"E1"}]`

	var results QuestionResultSlice
	assert.NoError(t, results.Scan(input))
	assert.Len(t, results, 1)
	assert.Equal(t, domain.QuestionResult{
		Question:    "Q1",
		Answer:      "A",
		UserAnswer:  "B",
		IsCorrect:   false,
		Explanation: "E1",
	}, results[0])
}

func TestQuestionResultSlice_ValueNil(t *testing.T) {
	var q QuestionResultSlice
	val, err := q.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", val)
}
