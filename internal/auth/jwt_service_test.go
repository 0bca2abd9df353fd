package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate(7, "bob@x.com", "bob")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "bob@x.com", claims.Email)
	assert.Equal(t, "bob", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Generate(7, "bob@x.com", "bob")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").Parse(token)
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}
