package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one parsed line of a secretsdump-style hash dump
type Entry struct {
	Domain    string
	Username  string
	UID       string
	LMHash    string
	NTHash    string
	FullEntry string
}

// ParseDumpFile parses a hash dump in DOMAIN\user:uid:lmhash:nthash:... form.
// Malformed lines are skipped, they never abort the report.
func ParseDumpFile(path string) (entries []Entry, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read hash file %s: %s", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if entry, ok := parseDumpLine(strings.TrimSpace(scanner.Text())); ok {
			entries = append(entries, entry)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading hash file %s: %s", path, err)
	}

	return entries, nil
}

func parseDumpLine(line string) (Entry, bool) {
	if line == "" {
		return Entry{}, false
	}
	parts := strings.Split(line, ":")
	if len(parts) < 4 {
		return Entry{}, false
	}

	domain, username := "", parts[0]
	if strings.Contains(username, "\\") {
		split := strings.SplitN(username, "\\", 2)
		domain, username = split[0], split[1]
	}

	return Entry{
		Domain:    domain,
		Username:  username,
		UID:       parts[1],
		LMHash:    strings.ToLower(parts[2]),
		NTHash:    strings.ToLower(parts[3]),
		FullEntry: line,
	}, true
}
