package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vmfarias/readrush/internal/auth"
)

const testSecret = "a-long-and-safe-secret-key-for-tests"
const testUserID = "user-123"
const testRole = "user"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but did not")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want: %s, got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should fail on an expired token, but passed")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": testUserID,
			"exp":     time.Now().Add(time.Minute).Unix(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("a-different-forged-secret"))
		if err != nil {
			t.Fatalf("signing forged token failed: %v", err)
		}

		if _, err := auth.ValidateJWT(forged); !errors.Is(err, jwt.ErrSignatureInvalid) {
			t.Errorf("wrong error for forged signature: %v", err)
		}
	})
}
