package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRecordRoundTrip(t *testing.T) {
	due := int64(1710000000000)
	project := &Project{
		ID:      "p1",
		Title:   "Spring cleaning",
		DueDate: &due,
		Tasks: []Task{
			{ID: "t1", Title: "Windows", Status: TaskNotStarted},
			{ID: "t2", Title: "Garage", Description: "shelves first", Status: TaskInProgress},
		},
	}

	parsed, err := ParseProjectRecord(project.Record())
	require.NoError(t, err)
	assert.Equal(t, project, parsed)
}

func TestParseProjectRecordRejectsUnknownTaskStatus(t *testing.T) {
	rec := &ProjectRecord{
		ID:    "p1",
		Title: "Board",
		Tasks: []TaskRecord{{ID: "t1", Title: "Task", Status: "DONE_ISH"}},
	}

	_, err := ParseProjectRecord(rec)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems, "status")
}
