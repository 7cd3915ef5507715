package credentials

import (
	"testing"

	"github.com/prn-tf/mira-movil/internal/domain"
)

func TestLoginNameVerifier(t *testing.T) {
	v := LoginNameVerifier{}
	user := &domain.UserAccount{LoginName: "jperez"}

	if !v.Verify(user, "jperez") {
		t.Error("password equal to login name must verify")
	}
	if v.Verify(user, "other") {
		t.Error("password different from login name must not verify")
	}
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	hash, err := v.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	user := &domain.UserAccount{LoginName: "jperez", PasswordHash: hash}
	if !v.Verify(user, "s3cret-password") {
		t.Error("correct password must verify")
	}
	if v.Verify(user, "wrong") {
		t.Error("wrong password must not verify")
	}

	// Accounts registered under the placeholder scheme have no hash.
	if v.Verify(&domain.UserAccount{LoginName: "jperez"}, "jperez") {
		t.Error("empty stored hash must never verify")
	}
}
