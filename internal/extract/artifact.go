package extract

import (
	"io/ioutil"
	"strings"

	"hashlook/internal/hash"
)

// WriteArtifact saves the deduplicated extracted list one hash per line, in
// discovery order, for inspection or reuse. A convenience side output, the
// lookup pipeline does not depend on it.
func WriteArtifact(records []hash.Record, path string) error {
	var content strings.Builder
	for _, record := range records {
		content.WriteString(record.Value)
		content.WriteByte('\n')
	}

	return ioutil.WriteFile(path, []byte(content.String()), 0644)
}
