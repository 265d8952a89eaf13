package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"hashlook/internal/report"
)

func main() {

	// Read flags
	dumpFile := flag.String("file", "", "input hash dump file")
	passwordsFile := flag.String("passwords", "", "cracked passwords file")
	outputFile := flag.String("output", "", "output XLSX file")
	pdfFile := flag.String("pdf", "", "optional PDF file with the recovered credentials")
	flag.Parse()

	if *dumpFile == "" || *passwordsFile == "" || *outputFile == "" {
		log.Fatalln("Please provide -file, -passwords and -output.")
	}

	fmt.Printf("Parsing hash file: %s\n", *dumpFile)
	entries, err := report.ParseDumpFile(*dumpFile)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Found %d hash entries\n", len(entries))

	fmt.Printf("Parsing cracked passwords file: %s\n", *passwordsFile)
	cracked, err := report.ParseCrackedFile(*passwordsFile)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Found %d cracked passwords\n", len(cracked))

	credentials := report.Match(entries, cracked)
	fmt.Printf("Successfully matched %d passwords\n", len(credentials))

	if err = report.ExportToXLSX(entries, credentials, *outputFile); err != nil {
		log.Fatalf("Could not save XLSX report: %s", err)
	}
	fmt.Printf("XLSX report successfully created: %s\n", *outputFile)

	if *pdfFile != "" {
		if !strings.HasSuffix(*pdfFile, ".pdf") {
			log.Printf("PDF file %s does not carry a .pdf extension", *pdfFile)
		}
		if err = report.ExportToPDF(credentials, *pdfFile); err != nil {
			log.Fatalf("Could not save PDF report: %s", err)
		}
		fmt.Printf("PDF report successfully created: %s\n", *pdfFile)
	}
}
