package lookup

import (
	"log"
	"time"

	"github.com/google/uuid"

	"hashlook/internal/api"
	"hashlook/internal/batch"
	"hashlook/internal/extract"
	"hashlook/internal/hash"
	"hashlook/internal/provider"
	"hashlook/internal/results"
)

// Job describes one lookup run assembled from the CLI flags
type Job struct {
	Type          hash.Type
	InputFile     string
	SingleHash    string
	OutputFile    string
	ExtractedFile string
	Verbose       int
}

// Bulk runs the end-to-end dump flow: extract, chunk, then one paced remote
// request per chunk, strictly sequential. Chunks are processed in extraction
// order and results recorded per chunk, so output order matches discovery
// order no matter how the service orders its response lines.
func Bulk(job Job, service provider.LookupService) (results.Summary, error) {
	runID := uuid.New().String()[:8]

	records, err := extract.HashesFromFile(job.InputFile, job.Type)
	if err != nil {
		return results.Summary{}, err
	}
	log.Printf("[lookup:%s] extracted %d unique %s hashes from %s", runID, len(records), job.Type, job.InputFile)

	if job.ExtractedFile != "" {
		// Inspection artifact only, a write failure does not stop the run
		if err := extract.WriteArtifact(records, job.ExtractedFile); err != nil {
			log.Printf("[lookup:%s] could not save extracted hashes to %s: %s", runID, job.ExtractedFile, err)
		} else if job.Verbose >= 1 {
			log.Printf("[lookup:%s] saved extracted hashes to %s", runID, job.ExtractedFile)
		}
	}

	sink := results.NewSink(job.OutputFile)
	defer sink.Close()

	if len(records) == 0 {
		log.Printf("[lookup:%s] nothing to look up", runID)
		return sink.Summary(), nil
	}

	chunks := batch.Split(records, service.BatchSize)
	client := api.NewClient(service, job.Verbose)
	for index, chunk := range chunks {
		if job.Verbose >= 1 {
			log.Printf("[lookup:%s] chunk %d/%d (%d hashes)", runID, index+1, len(chunks), len(chunk))
		}
		start := time.Now()
		resolved := client.LookupChunk(chunk, job.Type)
		for _, record := range chunk {
			sink.Record(resolved[record.Value])
		}
		if job.Verbose >= 2 {
			log.Printf("[lookup:%s] chunk %d done in %.2f seconds", runID, index+1, time.Since(start).Seconds())
		}
		// Unconditional pacing between chunks, the service enforces a rate ceiling
		if index != len(chunks)-1 {
			time.Sleep(service.Pacing())
		}
	}

	summary := sink.Summary()
	log.Printf("[lookup:%s] done: %d processed, %d found, %d not found, %d failed",
		runID, summary.Total, summary.Found, summary.NotFound, summary.Failed)

	return summary, nil
}

// Single looks up one hash directly, bypassing extraction, chunking and pacing
func Single(job Job, service provider.LookupService) (results.Summary, error) {
	sink := results.NewSink(job.OutputFile)
	defer sink.Close()

	client := api.NewClient(service, job.Verbose)
	sink.Record(client.Lookup(job.SingleHash, job.Type))

	return sink.Summary(), nil
}
