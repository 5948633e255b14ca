package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// maxDownloadSize caps the size of a downloaded configuration file.
const maxDownloadSize = 1 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Download fetches the file found at uri and returns its content.
func Download(uri string) ([]byte, error) {
	res, err := httpClient.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download file from URI: %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download file from URI: %s, status %v", uri, res.Status)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxDownloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}
	if len(data) > maxDownloadSize {
		return nil, fmt.Errorf("the downloaded file exceeds %d bytes", maxDownloadSize)
	}
	return data, nil
}

// ReadSource returns the content of a local file or, if src is a URL, of the remote file.
func ReadSource(src string) ([]byte, error) {
	if IsValidUrl(src) {
		return Download(src)
	}
	return os.ReadFile(src)
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}
