// Package migrations imports settings from the secrets.json file used by
// earlier client tooling into the cpgate configuration and keyring.
package migrations

import (
	"encoding/json"
	"fmt"
)

// LegacyCredentials is the credentials block of a legacy secrets file.
type LegacyCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LegacySecrets is the legacy secrets.json layout. Keys match case-insensitively.
type LegacySecrets struct {
	IBKRCredentials LegacyCredentials `json:"ibkrCredentials"`
}

// parseLegacySecrets decodes a legacy secrets file.
func parseLegacySecrets(data []byte) (LegacySecrets, error) {
	var secrets LegacySecrets
	if err := json.Unmarshal(data, &secrets); err != nil {
		return LegacySecrets{}, fmt.Errorf("invalid secrets file: %w", err)
	}
	return secrets, nil
}
