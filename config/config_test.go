package config

import "testing"

func TestLoadConfigReadsSecretsFromEnvOnly(t *testing.T) {
	t.Setenv("SESSION_TOKEN_SECRET", "sess-secret")
	t.Setenv("ACTION_TOKEN_SECRET", "act-secret")
	t.Setenv("ADMIN_KEY", "letmein")

	LoadConfig()

	if AppConfig.SessionTokenSecret != "sess-secret" {
		t.Errorf("SessionTokenSecret = %q, want env value", AppConfig.SessionTokenSecret)
	}
	if AppConfig.ActionTokenSecret != "act-secret" {
		t.Errorf("ActionTokenSecret = %q, want env value", AppConfig.ActionTokenSecret)
	}
	if AppConfig.AdminKey != "letmein" {
		t.Errorf("AdminKey = %q, want env value", AppConfig.AdminKey)
	}
	// Defaults still apply for everything else.
	if AppConfig.AppPort != "8080" {
		t.Errorf("AppPort = %q, want default 8080", AppConfig.AppPort)
	}
}
