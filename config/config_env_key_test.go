package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "appcenar",
		},
		"smtp": map[string]any{
			"userName": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"app": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "SMTP_USERNAME", want: "smtp.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "APP_PUBLICBASEURL", want: "app.publicBaseUrl"},
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
