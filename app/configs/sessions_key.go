package configs

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"
)

// GenerateAndPrintSessionKeys prints fresh auth/encryption keys for the
// session cookie store so they can be copied into .env.
func GenerateAndPrintSessionKeys() error {
	authKey := securecookie.GenerateRandomKey(64)
	encKey := securecookie.GenerateRandomKey(32)

	if authKey == nil || encKey == nil {
		return fmt.Errorf("failed to generate random session keys")
	}

	fmt.Printf("APP_AUTH_KEY=%s\n", base64.StdEncoding.EncodeToString(authKey))
	fmt.Printf("APP_ENC_KEY=%s\n", base64.StdEncoding.EncodeToString(encKey))

	return nil
}
