package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"hashlook/internal/hash"
)

// Hashes scans arbitrary text for hash-shaped tokens of the requested type.
// A token is a maximal run of hexadecimal characters whose length matches the
// type exactly; longer runs are discarded whole rather than substring-matched.
// Values are deduplicated case-insensitively, first occurrence fixes the order.
func Hashes(input io.Reader, hashType hash.Type) (records []hash.Record, err error) {
	wantLength := hashType.HexLength()
	reader := bufio.NewReader(input)
	seen := make(map[string]bool)

	token := make([]byte, 0, wantLength+1)
	flush := func() {
		if len(token) == wantLength {
			value := hash.Normalize(string(token))
			if !seen[value] {
				seen[value] = true
				records = append(records, hash.Record{Value: value, Type: hashType})
			}
		}
		token = token[:0]
	}

	for {
		character, readErr := reader.ReadByte()
		if readErr == io.EOF {
			flush()
			break
		}
		if readErr != nil {
			return nil, readErr
		}
		if hash.IsHexChar(character) {
			// One extra character is enough to disqualify an overlong run
			if len(token) <= wantLength {
				token = append(token, character)
			}
			continue
		}
		flush()
	}

	return records, nil
}

// HashesFromFile extracts hashes from a dump file. A missing or unreadable
// input is the only error; zero matches is a valid, reported outcome.
func HashesFromFile(path string, hashType hash.Type) ([]hash.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read input file %s: %s", path, err)
	}
	defer file.Close()

	return Hashes(file, hashType)
}
