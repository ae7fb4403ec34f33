package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Defaults point at the published feed locations and the conventional local
// file names.
const (
	DefaultFeedURL      = "https://wetmore.ca/ip/haproxy_geo_ip.txt"
	DefaultDigestURL    = "https://wetmore.ca/ip/haproxy_geo_ip.sha256"
	DefaultASNBaseURL   = "https://raw.githubusercontent.com/ipverse/asn-ip/master/as"
	DefaultSnapshotPath = "haproxy_geo_ip.txt"
	DefaultOutputPath   = "okcidr.txt"
)

// Main is the top level configuration.
type Main struct {
	FeedURL      string `yaml:"feedUrl"`
	DigestURL    string `yaml:"digestUrl"`
	ASNBaseURL   string `yaml:"asnBaseUrl"`
	SnapshotPath string `yaml:"snapshotPath"`
	OutputPath   string `yaml:"outputPath"`
}

// Load reads the YAML configuration at path. A missing file is not an error:
// it yields the defaults. Fields left empty in the file also fall back to
// their defaults.
func Load(path string) (*Main, error) {
	cfg := &Main{}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %v: %v", path, err)
		}
	} else if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %v: %v", path, err)
	}

	if cfg.FeedURL == "" {
		cfg.FeedURL = DefaultFeedURL
	}
	if cfg.DigestURL == "" {
		cfg.DigestURL = DefaultDigestURL
	}
	if cfg.ASNBaseURL == "" {
		cfg.ASNBaseURL = DefaultASNBaseURL
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = DefaultSnapshotPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	return cfg, nil
}
