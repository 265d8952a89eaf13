package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseCrackedFile reads recovered passwords from lookup output. Accepts both
// hash:password and space-separated hash password lines; not-found and
// lookup-failed sentinel lines are skipped.
func ParseCrackedFile(path string) (cracked map[string]string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read cracked passwords file %s: %s", path, err)
	}
	defer file.Close()

	cracked = make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isSentinelLine(line) {
			continue
		}

		hashValue, password := "", ""
		if strings.Contains(line, ":") {
			split := strings.SplitN(line, ":", 2)
			hashValue, password = split[0], split[1]
		} else if strings.Contains(line, " ") {
			split := strings.SplitN(line, " ", 2)
			hashValue, password = split[0], split[1]
		}

		hashValue = strings.ToLower(strings.TrimSpace(hashValue))
		password = strings.TrimSpace(password)
		if hashValue != "" && password != "" {
			cracked[hashValue] = password
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading cracked passwords file %s: %s", path, err)
	}

	return cracked, nil
}

func isSentinelLine(line string) bool {
	lowered := strings.ToLower(line)
	return strings.Contains(lowered, "[not found]") || strings.Contains(lowered, "[lookup failed]")
}
