package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yanis-san/torii-auto/app/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cure-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "S3cure-password", hash)

	assert.True(t, CheckPasswordHash("S3cure-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "amel@torii.dz", "Amel", "B", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "amel@torii.dz", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "torii-auto", claims.Issuer)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	token, err := GenerateJWT("user-1", "amel@torii.dz", "Amel", "B", "teacher")
	assert.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token")
	assert.Error(t, err)
}
