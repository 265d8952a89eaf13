package report

// Credential pairs an account from the dump with its recovered password
type Credential struct {
	Domain   string
	Username string
	Password string
}

// Match joins dump entries with recovered passwords, NT hash first, LM as a
// fallback. Only entries with a recovered password are reported.
func Match(entries []Entry, cracked map[string]string) (credentials []Credential) {
	for _, entry := range entries {
		password, ok := cracked[entry.NTHash]
		if !ok {
			password, ok = cracked[entry.LMHash]
		}
		if !ok {
			continue
		}
		credentials = append(credentials, Credential{
			Domain:   entry.Domain,
			Username: entry.Username,
			Password: password,
		})
	}
	return credentials
}
