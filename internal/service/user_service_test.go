package service

import "testing"

func TestParseStudentCSV(t *testing.T) {
	data := `Alice,alice@example.com,secret123,1234567890,Web Development,Engineering,MIT
Bob,bob@example.com,secret456,,Data Science,,
Carol,carol@example.com,secret789`

	students, skipped := ParseStudentCSV(data)
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}

	if students[0].Name != "Alice" || students[0].InternshipDomain != "Web Development" || students[0].College != "MIT" {
		t.Fatalf("unexpected first row: %+v", students[0])
	}
	if students[1].Phone != "" || students[1].InternshipDomain != "Data Science" {
		t.Fatalf("unexpected second row: %+v", students[1])
	}
	// 不足 7 列的行补空
	if students[2].Password != "secret789" || students[2].Phone != "" || students[2].College != "" {
		t.Fatalf("short row not padded: %+v", students[2])
	}
}

func TestParseStudentCSVSkipsIncompleteRows(t *testing.T) {
	data := `Alice,alice@example.com,secret123
,missing-name@example.com,secret
Bob,,secret
Carol,carol@example.com,`

	students, skipped := ParseStudentCSV(data)
	if len(students) != 1 {
		t.Fatalf("expected 1 valid student, got %d", len(students))
	}
	if skipped != 3 {
		t.Fatalf("expected 3 skipped rows, got %d", skipped)
	}
	if students[0].Name != "Alice" {
		t.Fatalf("unexpected student: %+v", students[0])
	}
}

func TestParseStudentCSVTrimsWhitespace(t *testing.T) {
	data := ` Alice , alice@example.com , secret123 `

	students, _ := ParseStudentCSV(data)
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}
	if students[0].Name != "Alice" || students[0].Email != "alice@example.com" {
		t.Fatalf("fields not trimmed: %+v", students[0])
	}
}
