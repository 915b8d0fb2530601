package tokenutil

import (
	"testing"
	"time"

	"github.com/Super-Badmen-Viper/VibeJewel/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken("session-1", "secret", time.Hour, time.Now())
	require.NoError(t, err)

	id, err := ExtractSessionID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestExtractSessionID_Rejects(t *testing.T) {
	valid, err := CreateSessionToken("session-1", "secret", time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := CreateSessionToken("session-1", "secret", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "session-1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret": {valid, "other"},
		"expired":      {expired, "secret"},
		"no subject":   {noSubject, "secret"},
		"alg none":     {none, "secret"},
		"garbage":      {"not-a-token", "secret"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractSessionID(tt.token, tt.secret)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestCreateSessionToken_EmptySecret(t *testing.T) {
	_, err := CreateSessionToken("session-1", "", time.Hour, time.Now())
	assert.Error(t, err)
}
