package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestNoArgsPrintsUsage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr, "usage:") {
		t.Fatalf("expected usage on stderr, got %q", stderr)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "frobnicate")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("expected unknown command error, got %q", stderr)
	}
}

func TestInfoCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "info", "+442087712924")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}

	var record struct {
		Valid  bool   `json:"valid"`
		Region string `json:"region"`
	}
	if err := json.Unmarshal([]byte(stdout), &record); err != nil {
		t.Fatalf("expected JSON record, got %q", stdout)
	}
	if !record.Valid || record.Region != "GB" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestInfoCommandInvalidNumber(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "info", "notanumber")
	if code != exitError {
		t.Fatalf("expected exit %d, got %d", exitError, code)
	}
	if stdout != "" {
		t.Fatalf("expected empty stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Invalid phone number") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestNormalizeCommandFromArgs(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "normalize", "-strip", "+442087712924")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}
	if stdout != "+442087712924\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestNormalizeCommandFromStdin(t *testing.T) {
	stdin := "02087712924\n\n12345\n"
	code, stdout, stderr := runCLI(t, stdin, "normalize", "-country", "gb")
	if code != exitError {
		// The second stdin line is unparseable; the batch fails whole.
		t.Fatalf("expected exit %d, got %d (stdout %q)", exitError, code, stdout)
	}
	if !strings.Contains(stderr, "Invalid phone number '12345'") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestNormalizeCommandArgsBeatStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, "notanumber\n", "normalize", "+442087712924")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}
	if !strings.HasPrefix(stdout, "+44") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestNormalizeCommandBadCountryCode(t *testing.T) {
	code, _, stderr := runCLI(t, "", "normalize", "-country", "usa", "+442087712924")
	if code != exitError {
		t.Fatalf("expected exit %d, got %d", exitError, code)
	}
	if !strings.Contains(stderr, "Invalid country code 'usa'") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestIDCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "id", "-strip", "6281812345678", "081812345678")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", stdout)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "+62") {
			t.Fatalf("unexpected line %q", line)
		}
	}
}

func TestIsValidCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "isvalid", "+6281812345678")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout != "valid\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	code, stdout, _ = runCLI(t, "", "isvalid", "+6281812345")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout != "invalid\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestIsValidCommandQuiet(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "isvalid", "-q", "+6281812345")
	if code != exitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no output in quiet mode, got %q", stdout)
	}

	code, stdout, _ = runCLI(t, "", "isvalid", "-q", "+6281812345678")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stdout != "" {
		t.Fatalf("expected no output in quiet mode, got %q", stdout)
	}
}
