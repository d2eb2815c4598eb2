package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	ProviderKindMapbox    = "mapbox"
	ProviderKindNominatim = "nominatim"
	ProviderKindMock      = "mock"

	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	defaultSuggestLimit      = 10
	defaultLanguage          = "en"
	defaultUserAgent         = "chirpmap/1.0"
	defaultProviderTimeout   = 10 * time.Second
	defaultLookupTimeout     = 15 * time.Second
	defaultEnrichConcurrency = 4
	defaultFlyDuration       = 800 * time.Millisecond
	defaultRadius            = "25km"
	defaultClientBuffer      = 16
)

// searchRadii mirrors the radius picker; the engine owns the zoom mapping.
var searchRadii = []string{"5km", "10km", "25km", "50km", "100km"}

// applyDefaults fills optional sections left out of the YAML file.
func (c *Config) applyDefaults() {
	if c.Provider == nil {
		c.Provider = &ProviderConfig{Kind: ProviderKindMock}
	}
	if c.Provider.Kind == "" {
		c.Provider.Kind = ProviderKindMock
	}
	if c.Provider.SuggestLimit <= 0 {
		c.Provider.SuggestLimit = defaultSuggestLimit
	}
	if c.Provider.Language == "" {
		c.Provider.Language = defaultLanguage
	}
	if c.Provider.UserAgent == "" {
		c.Provider.UserAgent = defaultUserAgent
	}
	if c.Provider.Timeout <= 0 {
		c.Provider.Timeout = defaultProviderTimeout
	}

	if c.Suggestion == nil {
		c.Suggestion = &SuggestionConfig{}
	}
	if c.Suggestion.LookupTimeout <= 0 {
		c.Suggestion.LookupTimeout = defaultLookupTimeout
	}
	if c.Suggestion.EnrichConcurrency <= 0 {
		c.Suggestion.EnrichConcurrency = defaultEnrichConcurrency
	}

	if c.Viewport == nil {
		c.Viewport = &ViewportConfig{}
	}
	if c.Viewport.FlyDuration <= 0 {
		c.Viewport.FlyDuration = defaultFlyDuration
	}
	if c.Viewport.DefaultRadius == "" {
		c.Viewport.DefaultRadius = defaultRadius
	}

	if c.Stream == nil {
		c.Stream = &StreamConfig{}
	}
	if c.Stream.ClientBuffer <= 0 {
		c.Stream.ClientBuffer = defaultClientBuffer
	}
}

// validate rejects settings the engine would otherwise only discover on first use.
func (c *Config) validate() error {
	switch c.Provider.Kind {
	case ProviderKindMock, ProviderKindNominatim:
	case ProviderKindMapbox:
		if c.Provider.AccessToken == "" {
			return errors.New("provider.accessToken is required for the mapbox provider")
		}
	default:
		return errors.Errorf("provider.kind %q is not one of mapbox, nominatim, mock", c.Provider.Kind)
	}

	radius := strings.ToLower(strings.TrimSpace(c.Viewport.DefaultRadius))
	known := false
	for _, r := range searchRadii {
		if r == radius {
			known = true

			break
		}
	}
	if !known {
		return errors.Errorf("viewport.defaultRadius %q is not one of %s", c.Viewport.DefaultRadius, strings.Join(searchRadii, ", "))
	}

	if c.PubSub != nil {
		switch c.PubSub.Provider {
		case "", PubSubProviderLocal, PubSubProviderGoogle:
		default:
			return errors.Errorf("pubsub.provider %q is not one of local, google", c.PubSub.Provider)
		}
	}

	return nil
}
