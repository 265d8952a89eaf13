package api

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"

	"hashlook/internal/batch"
	"hashlook/internal/hash"
	"hashlook/internal/provider"
	"hashlook/internal/results"
)

// Client performs lookups against one remote hash lookup service
type Client struct {
	service   provider.LookupService
	http      *http.Client
	verbosity int
}

// NewClient constructs a client honouring the service's request timeout
func NewClient(service provider.LookupService, verbosity int) *Client {
	return &Client{
		service:   service,
		http:      &http.Client{Timeout: service.Timeout()},
		verbosity: verbosity,
	}
}

// Lookup is the single-hash path: one direct request, no chunking, no pacing.
// The token is passed through unvalidated, the service decides what it knows.
func (client *Client) Lookup(hashValue string, hashType hash.Type) results.Result {
	normalized := hash.Normalize(hashValue)
	url := fmt.Sprintf("%s/%s/%s", client.service.BaseURL, hashType, normalized)

	response, err := client.http.Get(url)
	if err != nil {
		log.Printf("[api] single lookup failed: %s", err)
		return results.Failed(normalized)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNoContent {
		return results.NotFound(normalized)
	}
	if response.StatusCode != http.StatusOK {
		log.Printf("[api] unexpected status code %d for single lookup", response.StatusCode)
		return results.Failed(normalized)
	}

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		log.Printf("[api] could not read single lookup response: %s", err)
		return results.Failed(normalized)
	}

	parsed := parseResponse(string(body))
	if result, ok := parsed[normalized]; ok {
		return result
	}
	// The service answered for one hash, trust its key form
	if len(parsed) == 1 {
		for _, result := range parsed {
			return result
		}
	}

	return results.NotFound(normalized)
}

// LookupChunk resolves every record of one chunk. Transport failures are
// retried a bounded number of times with the pacing delay between attempts;
// exhausted retries mark the whole chunk failed rather than aborting the run.
func (client *Client) LookupChunk(chunk batch.Chunk, hashType hash.Type) map[string]results.Result {
	var body string
	attempts := 0
	for {
		text, err := client.postChunk(chunk, hashType)
		if err == nil {
			body = text
			break
		}
		attempts++
		if client.verbosity >= 2 {
			log.Printf("[api] chunk request failed (attempt %d/%d): %s", attempts, client.service.Retries, err)
		}
		if attempts >= client.service.Retries {
			log.Printf("[api] giving up on a chunk of %d hashes after %d attempts", len(chunk), attempts)
			return failedChunk(chunk)
		}
		time.Sleep(client.service.Pacing())
	}

	parsed := parseResponse(body)
	resolved := make(map[string]results.Result, len(chunk))
	missing := 0
	for _, record := range chunk {
		if result, ok := parsed[record.Value]; ok {
			resolved[record.Value] = result
			continue
		}
		// Ambiguous server silence becomes an explicit sentinel, never a drop
		resolved[record.Value] = results.NotFound(record.Value)
		missing++
	}
	if missing > 0 {
		log.Printf("[api] response omitted %d of %d hashes, recording them as not found", missing, len(chunk))
	}

	return resolved
}

func (client *Client) postChunk(chunk batch.Chunk, hashType hash.Type) (string, error) {
	url := fmt.Sprintf("%s?hashtype=%s", client.service.BaseURL, hashType)
	payload := strings.Join(chunk.Values(), "\n")

	response, err := client.http.Post(url, "text/plain", strings.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d", response.StatusCode)
	}
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// parseResponse reads the line-oriented service contract: one line per hash,
// either hash:password or hash:[not found]. Passwords may contain colons.
func parseResponse(body string) map[string]results.Result {
	parsed := make(map[string]results.Result)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		value := hash.Normalize(strings.TrimSpace(parts[0]))
		if parts[1] == "[not found]" {
			parsed[value] = results.NotFound(value)
			continue
		}
		parsed[value] = results.Found(value, parts[1])
	}
	return parsed
}

func failedChunk(chunk batch.Chunk) map[string]results.Result {
	resolved := make(map[string]results.Result, len(chunk))
	for _, record := range chunk {
		resolved[record.Value] = results.Failed(record.Value)
	}
	return resolved
}
