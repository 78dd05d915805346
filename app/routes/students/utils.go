package students

import (
	"crypto/rand"
	"encoding/hex"
)

// NewQRToken returns an opaque check-in token assigned to a student at
// creation time. Tokens never change for the lifetime of the student.
// The format is STU- plus 6 hex digits, within the qr_token column size.
func NewQRToken() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return "STU-" + hex.EncodeToString(buf)
}
