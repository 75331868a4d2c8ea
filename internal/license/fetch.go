package license

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const spdxLicenseBaseURL = "https://spdx.org/licenses"

// TextFetcher retrieves canonical license text by SPDX identifier. Any
// failure is reported as an error; callers treat every error as "not found"
// and never abort on it.
type TextFetcher interface {
	FetchText(id string) (string, error)
}

// SPDXFetcher looks up license text from the SPDX license list JSON files.
type SPDXFetcher struct {
	// BaseURL overrides the SPDX license list location, mainly for tests.
	BaseURL string
	// Client defaults to an HTTP client with a 10s timeout.
	Client *http.Client
}

// NewSPDXFetcher returns a fetcher against the public SPDX license list.
func NewSPDXFetcher() *SPDXFetcher {
	return &SPDXFetcher{
		BaseURL: spdxLicenseBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchText requests {base}/{id}.json and returns its licenseText field.
func (f *SPDXFetcher) FetchText(id string) (string, error) {
	url := fmt.Sprintf("%s/%s.json", strings.TrimSuffix(f.BaseURL, "/"), id)

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching license text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading license text response: %w", err)
	}

	var payload struct {
		LicenseText string `json:"licenseText"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding license text response: %w", err)
	}
	if payload.LicenseText == "" {
		return "", fmt.Errorf("no licenseText field for %s", id)
	}
	return payload.LicenseText, nil
}
