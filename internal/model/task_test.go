package model

import (
	"testing"
	"time"
)

func TestExportTask_GetDurationString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		started  time.Time
		finished time.Time
		expected string
	}{
		{time.Time{}, time.Time{}, "—"},
		{start, time.Time{}, "—"},
		{start, start.Add(250 * time.Millisecond), "250ms"},
		{start, start.Add(1500 * time.Millisecond), "1.5s"},
		{start, start.Add(12 * time.Second), "12.0s"},
	}

	for _, test := range tests {
		task := &ExportTask{StartedAt: test.started, FinishedAt: test.finished}
		result := task.GetDurationString()
		if result != test.expected {
			t.Errorf("GetDurationString() for %v..%v = %s, expected %s", test.started, test.finished, result, test.expected)
		}
	}
}

func TestExportTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
		kind       ExportKind
		expected   string
	}{
		{"favicon32.png", "/home/user/Downloads/favicon32.png", ExportKindSingle, "favicon32.png"},
		{"favicons.zip", "", ExportKindBundle, "favicons.zip"},
		{"", "", ExportKindBundle, "bundle"},
	}

	for _, test := range tests {
		task := &ExportTask{
			Name:       test.name,
			OutputPath: test.outputPath,
			Kind:       test.kind,
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with name='%s', path='%s' = '%s', expected '%s'",
				test.name, test.outputPath, result, test.expected)
		}
	}
}

func TestExportTask_Creation(t *testing.T) {
	now := time.Now()
	task := &ExportTask{
		ID:        "test-123",
		Kind:      ExportKindSingle,
		Name:      "favicon.ico",
		MIMEType:  MIMETypeIcon,
		Status:    TaskStatusPending,
		StartedAt: now,
	}

	if task.ID != "test-123" {
		t.Errorf("Expected ID to be 'test-123', got '%s'", task.ID)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be TaskStatusPending, got %s", task.Status)
	}

	if !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, task.StartedAt)
	}
}
