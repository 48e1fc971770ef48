package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"cohere": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"imageSearch": map[string]any{
			"searchEngineId": "",
		},
		"mongo": map[string]any{
			"uri": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "COHERE_APIKEY", want: "cohere.apiKey"},
		{envKey: "COHERE_BASEURL", want: "cohere.baseUrl"},
		{envKey: "IMAGESEARCH_SEARCHENGINEID", want: "imageSearch.searchEngineId"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
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
