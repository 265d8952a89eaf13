package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hashlook/internal/hash"
)

// readHashes reads hash tokens from a dump file, tolerating user:hash colon
// formats and skipping comments and tokens of the wrong shape
func readHashes(filename string, hashType hash.Type) (hashes []string, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token := line
		if strings.Contains(line, ":") {
			parts := strings.Split(line, ":")
			if len(parts) > 1 {
				token = parts[1]
			} else {
				token = parts[0]
			}
		}

		if !hash.Valid(token, hashType) {
			log.Printf("Warning: skipping invalid hash format in %s: %s", filename, line)
			continue
		}
		hashes = append(hashes, hash.Normalize(token))
	}

	return hashes, scanner.Err()
}

func main() {

	// Read flags
	filePattern := flag.String("file", "", "file pattern containing hashes (e.g. \"temp_split/raw-hash-*\")")
	password := flag.String("password", "", "password to test against hashes")
	hashTypeFlag := flag.String("type", "nt", "hash type (supported: nt, md5, sha1, sha256)")
	outputFile := flag.String("output", "", "output file for results")
	appendMode := flag.Bool("append", false, "append to the output file instead of overwriting")
	flag.Parse()

	if *filePattern == "" || *password == "" || *outputFile == "" {
		log.Fatalln("Please provide -file, -password and -output.")
	}
	hashType, err := hash.ParseType(*hashTypeFlag)
	if err != nil {
		log.Fatalln(err)
	}

	digest, err := hash.DigestPassword(*password, hashType)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Generated %s digest for the candidate password: %s\n", hashType, digest)

	files, err := filepath.Glob(*filePattern)
	if err != nil || len(files) == 0 {
		log.Fatalf("No files found matching pattern %q", *filePattern)
	}
	fmt.Printf("Found %d files to process\n", len(files))

	allHashes := []string{}
	for _, filename := range files {
		fmt.Printf("Processing %s...\n", filename)
		hashes, err := readHashes(filename, hashType)
		if err != nil {
			log.Printf("Error reading file %s: %s", filename, err)
			continue
		}
		allHashes = append(allHashes, hashes...)
	}
	if len(allHashes) == 0 {
		log.Fatalln("No valid hashes found in the input files")
	}
	fmt.Printf("Total hashes processed: %d\n", len(allHashes))

	openFlags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if *appendMode {
		openFlags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	output, err := os.OpenFile(*outputFile, openFlags, 0644)
	if err != nil {
		log.Fatalf("Error opening output file %s: %s", *outputFile, err)
	}
	defer output.Close()

	matches := 0
	for _, hashValue := range allHashes {
		if hashValue == digest {
			fmt.Fprintf(output, "%s:%s\n", hashValue, *password)
			matches++
		} else {
			fmt.Fprintf(output, "%s:[not found]\n", hashValue)
		}
	}

	fmt.Printf("Found %d matches out of %d hashes\n", matches, len(allHashes))
}
