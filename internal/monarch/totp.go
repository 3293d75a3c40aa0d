package monarch

import (
	"strings"
	"time"

	"github.com/pquerna/otp/totp"
)

// totpCode derives the current one-time code from a base32 TOTP secret.
// Secrets are normalized the way authenticator apps accept them: spaces
// stripped, case folded up.
func totpCode(secret string, at time.Time) (string, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	return totp.GenerateCode(normalized, at)
}
