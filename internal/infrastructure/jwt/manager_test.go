package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)

	token, err := mgr.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	claims, err := mgr.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "prompaty", claims.Issuer)
}

func TestJWTManager_Expired(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	mgr.now = func() time.Time { return issued }
	token, err := mgr.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour).GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).VerifyToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceAdapter(t *testing.T) {
	svc := NewJWTService(NewJWTManager("test-secret", time.Hour))

	token, err := svc.GenerateAccessToken("admin", entity.UserRoleAdmin)
	require.NoError(t, err)
	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)

	_, err = svc.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
