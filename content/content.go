// Package content holds the static marketing copy of the landing page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

// Site is the full copy deck
type Site struct {
	Brand     string    `yaml:"brand"`
	Hero      Hero      `yaml:"hero"`
	Farmer    FormCopy  `yaml:"farmer"`
	Buyer     FormCopy  `yaml:"buyer"`
	Consumer  FormCopy  `yaml:"consumer"`
	Community Community `yaml:"community"`
	Footer    Footer    `yaml:"footer"`
}

type Hero struct {
	Title      string   `yaml:"title"`
	Tagline    string   `yaml:"tagline"`
	Highlights []string `yaml:"highlights"`
	Callout    string   `yaml:"callout"`
	Subtitle   string   `yaml:"subtitle"`
}

// FormCopy is the heading and button text of one signup card
type FormCopy struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Submit   string `yaml:"submit"`
}

type Community struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Button      string `yaml:"button"`
	Note        string `yaml:"note"`
	Perks       []Perk `yaml:"perks"`
}

type Perk struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type Footer struct {
	About     string         `yaml:"about"`
	Email     string         `yaml:"email"`
	Phone     string         `yaml:"phone"`
	Address   string         `yaml:"address"`
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
}

type FooterColumn struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Default returns the embedded copy deck
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Load reads a copy deck from path, or the embedded one when path is empty
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a copy deck
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the fields the page cannot render without
func (s *Site) Validate() error {
	if s.Brand == "" {
		return errors.New("content: brand is required")
	}
	if s.Community.URL != "" {
		u, err := url.Parse(s.Community.URL)
		if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return fmt.Errorf("content: community url %q must be an absolute http(s) URL", s.Community.URL)
		}
	}
	return nil
}
