package extract

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hashlook/internal/hash"
)

func extractedValues(t *testing.T, input string, hashType hash.Type) []string {
	t.Helper()
	records, err := Hashes(strings.NewReader(input), hashType)
	if err != nil {
		t.Fatalf("[extract/Hashes] unexpected error: %s", err)
	}
	values := []string{}
	for _, record := range records {
		values = append(values, record.Value)
	}
	return values
}

func TestHashesFindsTokensInOrder(t *testing.T) {
	input := "user1:a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6\nuser2:d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9\n"
	expected := []string{
		"a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6",
		"d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9",
	}
	values := extractedValues(t, input, hash.NT)
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Errorf("[extract/Hashes] unexpected tokens (-expected +got):\n%s", diff)
	}
}

func TestHashesDeduplicatesCaseInsensitively(t *testing.T) {
	input := "A1B2C3D4E5F6A7B8C9D0A1B2C3D4E5F6 some text a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6"
	values := extractedValues(t, input, hash.NT)
	expected := []string{"a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6"}
	if diff := cmp.Diff(expected, values); diff != "" {
		t.Errorf("[extract/Hashes] duplicate not collapsed (-expected +got):\n%s", diff)
	}
}

func TestHashesRejectsOverlongRuns(t *testing.T) {
	// A 64-character hex run is a sha256 token, not two embedded nt tokens
	run := strings.Repeat("a1b2c3d4e5f6a7b8", 4)
	if values := extractedValues(t, run, hash.NT); len(values) != 0 {
		t.Errorf("[extract/Hashes] matched %d nt tokens inside a 64-character run", len(values))
	}
	if values := extractedValues(t, run, hash.SHA256); len(values) != 1 {
		t.Errorf("[extract/Hashes] got %d sha256 tokens, expected 1", len(values))
	}
}

func TestHashesZeroMatchesIsNotAnError(t *testing.T) {
	records, err := Hashes(strings.NewReader("no hashes in here"), hash.SHA1)
	if err != nil {
		t.Errorf("[extract/Hashes] unexpected error on zero matches: %s", err)
	}
	if len(records) != 0 {
		t.Errorf("[extract/Hashes] got %d records, expected none", len(records))
	}
}

func TestHashesIsIdempotent(t *testing.T) {
	input := "ffeeddccbbaa99887766554433221100;a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6;ffeeddccbbaa99887766554433221100"
	first := extractedValues(t, input, hash.NT)
	second := extractedValues(t, input, hash.NT)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("[extract/Hashes] extraction not idempotent (-first +second):\n%s", diff)
	}
}

func TestHashesFromFileMissingInput(t *testing.T) {
	if _, err := HashesFromFile("does-not-exist.txt", hash.NT); err == nil {
		t.Errorf("[extract/HashesFromFile] expected an error for a missing input file")
	}
}

func TestWriteArtifact(t *testing.T) {
	records := []hash.Record{
		{Value: "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6", Type: hash.NT},
		{Value: "d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9", Type: hash.NT},
	}
	path := filepath.Join(os.TempDir(), "hashlook-extract-test.txt")
	defer os.Remove(path)

	if err := WriteArtifact(records, path); err != nil {
		t.Fatalf("[extract/WriteArtifact] unexpected error: %s", err)
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("[extract/WriteArtifact] could not read artifact: %s", err)
	}
	expected := "a1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6\nd4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9\n"
	if string(content) != expected {
		t.Errorf("[extract/WriteArtifact] got %q, expected %q", string(content), expected)
	}
}
