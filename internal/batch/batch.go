package batch

import "hashlook/internal/hash"

// Chunk is one bounded-size ordered batch of hashes submitted in a single remote request
type Chunk []hash.Record

// Values returns the hash values of a chunk in order
func (chunk Chunk) Values() (values []string) {
	for _, record := range chunk {
		values = append(values, record.Value)
	}
	return values
}

// Split partitions records into contiguous chunks of at most size elements.
// Pure arithmetic partition: ceil(N/size) chunks, order preserved, the last
// chunk may be shorter, no record appears in more than one chunk.
func Split(records []hash.Record, size int) (chunks []Chunk) {
	if size < 1 {
		size = 1
	}
	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		chunks = append(chunks, Chunk(records[start:end]))
	}
	return chunks
}
