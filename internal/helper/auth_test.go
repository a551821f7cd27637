package helper

import (
	"testing"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("secret")

	token, err := auth.GenerateToken("alice01")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "alice01", claims.UniqueID)
	assert.Greater(t, claims.Expiry, claims.Iat)

	claims, err = auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice01", claims.UniqueID)
}

func TestVerifyTokenRejectsOtherSecret(t *testing.T) {
	token, err := SetupAuth("one").GenerateToken("alice01")
	require.NoError(t, err)

	_, err = SetupAuth("two").VerifyToken(token)
	assert.Error(t, err)

	_, err = SetupAuth("one").VerifyToken("")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	auth := SetupAuth("secret")
	hashed, err := HashSecret("Passw0rd!")
	require.NoError(t, err)

	assert.NoError(t, auth.VerifyPassword("Passw0rd!", hashed))
	assert.ErrorIs(t, auth.VerifyPassword("passw0rd!", hashed), domain.ErrInvalidCredentials)
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("Passw0rd!"))
	assert.True(t, StrongPassword("aB3&aB3&aB3&aB3"))

	assert.False(t, StrongPassword("Pa0!"), "too short")
	assert.False(t, StrongPassword("Passw0rd!Passw0rd!"), "too long")
	assert.False(t, StrongPassword("password0!"), "no upper")
	assert.False(t, StrongPassword("PASSWORD0!"), "no lower")
	assert.False(t, StrongPassword("Password!"), "no digit")
	assert.False(t, StrongPassword("Passw0rd1"), "no special")
	assert.False(t, StrongPassword("Passw0rd! "), "space not allowed")
	assert.False(t, StrongPassword("Passw0rd^"), "special outside set")
}

func TestValidPin(t *testing.T) {
	assert.True(t, ValidPin("0000"))
	assert.True(t, ValidPin("1234"))
	assert.False(t, ValidPin("123"))
	assert.False(t, ValidPin("12345"))
	assert.False(t, ValidPin("12a4"))
}

func TestValidateStruct(t *testing.T) {
	type body struct {
		Phone string `json:"phone" validate:"required,numeric,len=10"`
		Name  string `json:"name" validate:"required"`
	}

	assert.Nil(t, ValidateStruct(body{Phone: "9876543210", Name: "A"}))

	errs := ValidateStruct(body{Phone: "98765"})
	require.Len(t, errs, 2)
	assert.Equal(t, "phone must be 10 characters", errs["phone"])
	assert.Equal(t, "name is required", errs["name"])
}
