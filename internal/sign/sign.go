// Package sign implements the Lark/Feishu custom-bot request signature.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Generate returns the signature for a signed webhook request.
//
// Lark's custom-bot scheme uses "<timestamp>\n<secret>" as the HMAC-SHA256
// key and finalizes the MAC over zero message bytes; the raw MAC is then
// standard base64 encoded. The construction must match byte for byte or the
// webhook rejects the request with a sign-mismatch error.
func Generate(timestamp int64, secret string) string {
	stringToSign := fmt.Sprintf("%d\n%s", timestamp, secret)
	h := hmac.New(sha256.New, []byte(stringToSign))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
