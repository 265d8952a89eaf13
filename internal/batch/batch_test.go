package batch

import (
	"fmt"
	"testing"

	"hashlook/internal/hash"
)

func sampleRecords(count int) (records []hash.Record) {
	for i := 0; i < count; i++ {
		records = append(records, hash.Record{
			Value: fmt.Sprintf("%032x", i),
			Type:  hash.NT,
		})
	}
	return records
}

func TestSplitChunkSizes(t *testing.T) {
	chunks := Split(sampleRecords(700), 300)
	if len(chunks) != 3 {
		t.Fatalf("[batch/Split] got %d chunks, expected 3", len(chunks))
	}
	for index, expected := range []int{300, 300, 100} {
		if len(chunks[index]) != expected {
			t.Errorf("[batch/Split] chunk %d has %d records, expected %d", index+1, len(chunks[index]), expected)
		}
	}
}

func TestSplitReconstructsInput(t *testing.T) {
	records := sampleRecords(451)
	position := 0
	for _, chunk := range Split(records, 100) {
		for _, record := range chunk {
			if record.Value != records[position].Value {
				t.Fatalf("[batch/Split] record %d reordered: got %s, expected %s", position, record.Value, records[position].Value)
			}
			position++
		}
	}
	if position != len(records) {
		t.Errorf("[batch/Split] chunks hold %d records, expected %d", position, len(records))
	}
}

func TestSplitExactMultiple(t *testing.T) {
	chunks := Split(sampleRecords(600), 300)
	if len(chunks) != 2 {
		t.Errorf("[batch/Split] got %d chunks for an exact multiple, expected 2", len(chunks))
	}
}

func TestSplitEmptyInput(t *testing.T) {
	if chunks := Split(nil, 300); len(chunks) != 0 {
		t.Errorf("[batch/Split] got %d chunks for empty input, expected 0", len(chunks))
	}
}
