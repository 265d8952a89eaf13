package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Splits a hash dump into numbered files of a fixed number of lines each,
// sized for manual chunked processing
func main() {

	inputFile := flag.String("file", "", "input file to split")
	outputDir := flag.String("output", "", "output directory for split files")
	linesPerFile := flag.Int("lines", 500, "maximum lines per split file")
	flag.Parse()

	if *inputFile == "" || *outputDir == "" {
		log.Fatalln("Please provide -file and -output.")
	}
	if *linesPerFile < 1 {
		log.Fatalln("-lines must be at least 1.")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Could not create output directory %s: %s", *outputDir, err)
	}

	file, err := os.Open(*inputFile)
	if err != nil {
		log.Fatalf("Could not read input file %s: %s", *inputFile, err)
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		log.Fatalf("Error reading input file %s: %s", *inputFile, err)
	}

	fileIndex := 0
	for start := 0; start < len(lines); start += *linesPerFile {
		end := start + *linesPerFile
		if end > len(lines) {
			end = len(lines)
		}
		fileIndex++

		outputFile := filepath.Join(*outputDir, fmt.Sprintf("raw-hash-%02d", fileIndex))
		content := strings.Join(lines[start:end], "\n") + "\n"
		if err = ioutil.WriteFile(outputFile, []byte(content), 0644); err != nil {
			log.Fatalf("Could not write %s: %s", outputFile, err)
		}
		fmt.Printf("[+] Wrote %d lines to %s\n", end-start, outputFile)
	}
}
