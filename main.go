package main

import (
	"flag"
	"fmt"
	"log"

	"hashlook/internal/hash"
	"hashlook/internal/lookup"
	"hashlook/internal/provider"
	"hashlook/internal/results"
)

func main() {

	// Read flags
	hashTypeFlag := flag.String("type", "", "hash type (supported: nt, lm, md5, sha1, sha256)")
	inputFile := flag.String("file", "", "file containing hashes for bulk lookup")
	singleHash := flag.String("hash", "", "single hash for lookup")
	outputFile := flag.String("output", "", "output file to save results")
	extractedFile := flag.String("extracted", "", "file to save the deduplicated extracted hashes")
	endpointsConfig := flag.String("endpoints-config", "", "a lookup service endpoints file")
	serviceName := flag.String("service", "ntlm.pw", "lookup service name from the endpoints file")
	verbose := flag.Int("verbose", 1, "verbosity factor")
	flag.Parse()

	hashType, err := hash.ParseType(*hashTypeFlag)
	if err != nil {
		log.Fatalln(err)
	}
	if (*inputFile == "") == (*singleHash == "") {
		log.Fatalln("Please provide exactly one of -file or -hash.")
	}

	// Lookup service setup
	service := provider.Default()
	if *endpointsConfig != "" {
		services, err := provider.ReadServices(*endpointsConfig)
		if err != nil {
			log.Fatal("Could not fetch lookup services")
		}
		named, ok := services[*serviceName]
		if !ok {
			log.Fatalf("No lookup service %q in %s", *serviceName, *endpointsConfig)
		}
		service = named
	}

	job := lookup.Job{
		Type:          hashType,
		InputFile:     *inputFile,
		SingleHash:    *singleHash,
		OutputFile:    *outputFile,
		ExtractedFile: *extractedFile,
		Verbose:       *verbose,
	}

	var summary results.Summary
	if *inputFile != "" {
		summary, err = lookup.Bulk(job, service)
	} else {
		summary, err = lookup.Single(job, service)
	}
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("Processed %d hashes: %d found, %d not found, %d failed\n",
		summary.Total, summary.Found, summary.NotFound, summary.Failed)
}
