package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateJwt(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId:      42,
		Audience:     "adoptar/api",
		Email:        "admin@refugio.test",
		Id:           "jti-1",
		IsSuperAdmin: true,
		Issuer:       "adoptar",
		OrgId:        7,
		Secret:       secret,
		Ttl:          time.Hour,
		Username:     "admin",
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}

	claims, err := ValidateJwt(secret, token)
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if claims.AdminId != 42 {
		t.Errorf("expected adminId to be 42 but got %v", claims.AdminId)
	}
	if claims.OrgId != 7 {
		t.Errorf("expected orgId to be 7 but got %v", claims.OrgId)
	}
	if !claims.IsSuperAdmin {
		t.Error("expected isSuperAdmin to be true")
	}
	if claims.ID != "jti-1" {
		t.Errorf("expected jti to be jti-1 but got %s", claims.ID)
	}
	if claims.Subject != "admin@refugio.test" {
		t.Errorf("expected subject to be the email but got %s", claims.Subject)
	}
}

func TestValidateJwtRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId: 1,
		Email:   "admin@refugio.test",
		Id:      "jti-2",
		Secret:  "correct-secret",
		Ttl:     time.Hour,
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if _, err := ValidateJwt("wrong-secret", token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestValidateJwtRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId: 1,
		Email:   "admin@refugio.test",
		Id:      "jti-3",
		Secret:  "test-secret",
		Ttl:     -time.Minute,
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}
	if _, err := ValidateJwt("test-secret", token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateJwtRejectsGarbage(t *testing.T) {
	if _, err := ValidateJwt("test-secret", "not.a.token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
