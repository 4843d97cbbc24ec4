package session

import (
	"errors"
	"testing"
)

func TestConnect_RequiresToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	if _, err := Connect("", nil); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
}

func TestConnect_TokenFromEnv(t *testing.T) {
	t.Setenv(EnvToken, "env-token-4321")
	t.Setenv(EnvAccount, "")
	t.Setenv(EnvResources, "")

	sess, err := Connect("", nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if sess.TokenHint != "***4321" {
		t.Errorf("TokenHint = %q", sess.TokenHint)
	}
	if sess.Account != "chatgpt-user" {
		t.Errorf("Account = %q, want default", sess.Account)
	}
	if len(sess.Resources) == 0 {
		t.Error("default resources missing")
	}
	if sess.ConnectedAt.IsZero() {
		t.Error("ConnectedAt not set")
	}
}

func TestConnect_ExplicitBeatsEnv(t *testing.T) {
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvAccount, "ops-team")

	sess, err := Connect("explicit-token-abcd", map[string]interface{}{"workspace": "prod"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if sess.TokenHint != "***abcd" {
		t.Errorf("TokenHint = %q", sess.TokenHint)
	}
	if sess.Account != "ops-team" {
		t.Errorf("Account = %q", sess.Account)
	}
	if sess.Resources["workspace"] != "prod" {
		t.Errorf("Resources = %v", sess.Resources)
	}
}

func TestConnect_ResourcesFromEnv(t *testing.T) {
	t.Setenv(EnvToken, "token-1111")
	t.Setenv(EnvResources, `{"models":["gpt-4o"],"region":"eu"}`)

	sess, err := Connect("", nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if sess.Resources["region"] != "eu" {
		t.Errorf("Resources = %v", sess.Resources)
	}

	// Malformed JSON falls back to the defaults instead of failing.
	t.Setenv(EnvResources, "{not json")
	sess, err = Connect("", nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(sess.Resources) == 0 {
		t.Error("fallback resources missing")
	}
}

func TestResourceSummary(t *testing.T) {
	sess := &Session{Resources: map[string]interface{}{
		"workspace": "prod",
		"models":    "gpt-4o",
	}}
	// Keys come out sorted.
	want := "models: gpt-4o; workspace: prod"
	if got := sess.ResourceSummary(); got != want {
		t.Errorf("ResourceSummary = %q, want %q", got, want)
	}

	empty := &Session{}
	if got := empty.ResourceSummary(); got == "" {
		t.Error("empty summary must still describe the state")
	}
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abcdefgh", "***efgh"},
		{"abcd", "***abcd"},
		{"ab", "***ab"},
		{"", "(no token)"},
	}
	for _, tt := range tests {
		if got := maskToken(tt.in); got != tt.want {
			t.Errorf("maskToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
