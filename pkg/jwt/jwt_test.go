package jwt

import (
	"testing"
	"time"

	"meshitomo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expire time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "unit-test-secret",
		ExpireTime: expire,
		Issuer:     "meshitomo-test",
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("12345678", map[string]interface{}{"user_name": "Taro"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "12345678", claims.Subject)
	assert.Equal(t, "Taro", claims.Data["user_name"])
}

func TestGenerateRequiresUserID(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.GenerateToken("", nil)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken("12345678", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:     "different-secret",
		ExpireTime: time.Hour,
		Issuer:     "meshitomo-test",
	})

	token, err := other.GenerateToken("12345678", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsEmptyToken(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}
