// Package session holds the lightweight ChatGPT SSO integration. It is
// deliberately offline: a connection is established from a token and
// resource configuration supplied via parameters or environment
// variables, so the web app can surface connection status without ever
// calling an external service.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	// EnvToken supplies the SSO token when none is passed explicitly.
	EnvToken = "CHATGPT_SSO_TOKEN"
	// EnvAccount overrides the reported account name.
	EnvAccount = "CHATGPT_SSO_ACCOUNT"
	// EnvResources supplies a JSON object of advertised account resources.
	EnvResources = "CHATGPT_SSO_RESOURCES"
)

// ErrMissingToken is returned when no SSO token is available.
var ErrMissingToken = errors.New("a ChatGPT SSO token is required: pass one or set " + EnvToken)

// defaultResources is used when neither the caller nor the environment
// advertises account resources.
var defaultResources = map[string]interface{}{
	"models":    []interface{}{"gpt-4o-mini"},
	"workspace": "default",
	"notes":     "Using ChatGPT account resources",
}

// Session represents a lightweight SSO connection to ChatGPT.
type Session struct {
	Account     string                 `json:"account"`
	Resources   map[string]interface{} `json:"resources"`
	TokenHint   string                 `json:"token_hint"`
	ConnectedAt time.Time              `json:"connected_at"`
}

// Connect validates that a token is present, harvests resource
// configuration from the environment, and returns a session describing
// the connection. It never performs network I/O.
func Connect(token string, resources map[string]interface{}) (*Session, error) {
	if token == "" {
		token = os.Getenv(EnvToken)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	if resources == nil {
		resources = resourcesFromEnv()
	}
	if resources == nil {
		resources = defaultResources
	}

	account := os.Getenv(EnvAccount)
	if account == "" {
		account = "chatgpt-user"
	}

	return &Session{
		Account:     account,
		Resources:   resources,
		TokenHint:   maskToken(token),
		ConnectedAt: time.Now().UTC(),
	}, nil
}

// ResourceSummary renders the advertised resources as a compact
// "key: value; key: value" string for display.
func (s *Session) ResourceSummary() string {
	if len(s.Resources) == 0 {
		return "No resources advertised by ChatGPT account"
	}
	keys := make([]string, 0, len(s.Resources))
	for k := range s.Resources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, s.Resources[k]))
	}
	return strings.Join(parts, "; ")
}

func resourcesFromEnv() map[string]interface{} {
	raw := os.Getenv(EnvResources)
	if raw == "" {
		return nil
	}
	var resources map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		return nil
	}
	return resources
}

func maskToken(token string) string {
	if token == "" {
		return "(no token)"
	}
	if len(token) <= 4 {
		return "***" + token
	}
	return "***" + token[len(token)-4:]
}
