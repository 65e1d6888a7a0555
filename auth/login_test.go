package auth

import (
	"errors"
	"os"
	"testing"

	"github.com/Fayzullaev99/multishop/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueJWTRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	user := &models.User{ID: 42, Email: "user@example.com", IsStaff: true}
	tokenString := issueJWT(user)
	if tokenString == "" {
		t.Fatal("issueJWT returned empty token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token did not parse: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"].(float64) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}
	if claims["email"] != "user@example.com" {
		t.Errorf("email claim = %v, want user@example.com", claims["email"])
	}
	if claims["is_staff"] != true {
		t.Errorf("is_staff claim = %v, want true", claims["is_staff"])
	}
}
