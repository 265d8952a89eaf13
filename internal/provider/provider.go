package provider

import (
	"fmt"
	"io/ioutil"
	"log"
	"time"

	"gopkg.in/yaml.v2"
)

// LookupService is a class instance for remote hash lookup endpoints
type LookupService struct {
	BaseURL        string  `yaml:"baseurl"`
	BatchSize      int     `yaml:"batchsize"`
	PacingSeconds  float64 `yaml:"pacingseconds"`
	Retries        int     `yaml:"retries"`
	TimeoutSeconds int     `yaml:"timeoutseconds"`
}

// Default returns the built-in ntlm.pw endpoint used when no config file is given
func Default() LookupService {
	return LookupService{
		BaseURL:        "https://ntlm.pw/api/lookup",
		BatchSize:      300,
		PacingSeconds:  5,
		Retries:        3,
		TimeoutSeconds: 10,
	}
}

// Pacing is the minimum enforced delay between consecutive chunk requests
func (service LookupService) Pacing() time.Duration {
	return time.Duration(service.PacingSeconds * float64(time.Second))
}

// Timeout bounds every single network request to the service
func (service LookupService) Timeout() time.Duration {
	return time.Duration(service.TimeoutSeconds) * time.Second
}

// ReadServices reads a lookup services list from a YAML config file
func ReadServices(endpointConfig string) (services map[string]LookupService, err error) {
	yamlFile, err := ioutil.ReadFile(endpointConfig)
	if err != nil {
		log.Printf("yamlFile.Get err   #%v ", err)
		return nil, err
	}

	services = make(map[string]LookupService)
	err = yaml.Unmarshal(yamlFile, services)
	if err != nil {
		return nil, err
	}

	for name, service := range services {
		if err = service.validate(); err != nil {
			return nil, fmt.Errorf("lookup service %q: %s", name, err)
		}
	}

	return services, nil
}

func (service LookupService) validate() error {
	if service.BaseURL == "" {
		return fmt.Errorf("missing baseurl")
	}
	if service.BatchSize < 1 {
		return fmt.Errorf("batchsize must be at least 1, got %d", service.BatchSize)
	}
	if service.PacingSeconds < 0 {
		return fmt.Errorf("pacingseconds must not be negative, got %v", service.PacingSeconds)
	}
	if service.Retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", service.Retries)
	}
	if service.TimeoutSeconds < 1 {
		return fmt.Errorf("timeoutseconds must be at least 1, got %d", service.TimeoutSeconds)
	}
	return nil
}
