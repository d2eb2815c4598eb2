package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"provider": map[string]any{
			"accessToken":  "",
			"suggestLimit": 10,
		},
		"suggestion": map[string]any{
			"lookupTimeout": "15s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"viewport": map[string]any{
			"flyDuration": "800ms",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PROVIDER_ACCESSTOKEN", want: "provider.accessToken"},
		{envKey: "PROVIDER_SUGGESTLIMIT", want: "provider.suggestLimit"},
		{envKey: "SUGGESTION_LOOKUPTIMEOUT", want: "suggestion.lookupTimeout"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "VIEWPORT_FLYDURATION", want: "viewport.flyDuration"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
