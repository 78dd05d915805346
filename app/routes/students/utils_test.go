package students

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRTokenFormat(t *testing.T) {
	token := NewQRToken()

	assert.True(t, strings.HasPrefix(token, "STU-"))
	assert.Len(t, token, 10)
	assert.LessOrEqual(t, len(token), 20, "must fit the qr_token VARCHAR(20) column")

	_, err := hex.DecodeString(strings.TrimPrefix(token, "STU-"))
	require.NoError(t, err)
}

func TestNewQRTokenVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewQRToken()] = true
	}
	assert.Greater(t, len(seen), 1)
}
