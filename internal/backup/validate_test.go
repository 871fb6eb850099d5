package backup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidFile(t *testing.T) {
	raw := `{
		"version": "2.0",
		"workspace": "Acme",
		"exported": "2025-06-02T12:00:00Z",
		"data": {
			"employees": [{"id": "e1", "name": "Alice"}],
			"records": [{"id": "r1", "employeeId": "e1", "type": "coffee", "startTime": "2025-06-02T10:05:00Z", "endTime": null}],
			"settings": {"coffeeStart": "09:30", "schedule": {"3": {"enabled": false, "start": "09:00", "end": "12:00"}}}
		}
	}`
	b, err := Load(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Empty(t, Validate(b))
	assert.Equal(t, "Acme", b.Workspace)
	require.Len(t, b.Data.Records, 1)
	assert.Nil(t, b.Data.Records[0].EndTime)
}

func TestValidate_MissingRequiredSections(t *testing.T) {
	b, err := Load(strings.NewReader(`{"version": "2.0", "data": {}}`))
	require.NoError(t, err)

	errs := Validate(b)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "data.employees")
	assert.Contains(t, errs[1].Error(), "data.records")
}

func TestValidate_EmptyArraysAreValid(t *testing.T) {
	b, err := Load(strings.NewReader(`{"version": "2.0", "data": {"employees": [], "records": []}}`))
	require.NoError(t, err)
	assert.Empty(t, Validate(b), "presence is required, emptiness is fine")
}

func TestValidate_BadRecordFields(t *testing.T) {
	raw := `{"data": {
		"employees": [],
		"records": [
			{"id": "", "employeeId": "e1", "type": "smoke", "startTime": "not-a-time"}
		]
	}}`
	b, err := Load(strings.NewReader(raw))
	require.NoError(t, err)

	errs := Validate(b)
	require.Len(t, errs, 3)
}

func TestValidate_BadScheduleKey(t *testing.T) {
	raw := `{"data": {
		"employees": [], "records": [],
		"settings": {"schedule": {"7": {"enabled": true, "start": "08:00", "end": "17:00"}}}
	}}`
	b, err := Load(strings.NewReader(raw))
	require.NoError(t, err)

	errs := Validate(b)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "weekday key")
}

func TestLoad_Unparsable(t *testing.T) {
	_, err := Load(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing backup file")
}
