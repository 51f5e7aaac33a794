package users

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SecretHash computes the SECRET_HASH auth parameter Cognito requires for
// app clients configured with a client secret: a Base64-encoded HMAC-SHA256
// over the username followed by the client id, keyed with the client secret.
func SecretHash(clientID, clientSecret, username string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username))
	mac.Write([]byte(clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
