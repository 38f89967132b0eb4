package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateToken(userID, []string{"admin"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID.Hex())
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Errorf("Roles = %v, want [admin]", claims.Roles)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(primitive.NewObjectID(), nil)
	if err != nil {
		t.Fatal(err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected validation failure after secret change")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	SetSecret("test-secret")
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
