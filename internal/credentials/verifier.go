// Package credentials abstracts how login passwords are checked and
// stored. The controller only sees the Verifier interface, so the
// credential scheme can be swapped without touching authentication logic.
package credentials

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/mira-movil/internal/domain"
)

// Verifier checks a supplied password against an account and produces the
// stored form of a password at registration time.
type Verifier interface {
	// Verify reports whether the password authenticates the account.
	Verify(user *domain.UserAccount, password string) bool

	// Hash returns the value to store in UserAccount.PasswordHash when
	// an account is registered with the given password.
	Hash(password string) (string, error)
}

// LoginNameVerifier is the prototype credential scheme carried over from
// the original client: a password authenticates iff it equals the login
// name. It is deliberately weak and exists only so the demo fixtures work
// without provisioning; production deployments configure BcryptVerifier.
type LoginNameVerifier struct{}

// Verify reports whether the password equals the account's login name.
func (LoginNameVerifier) Verify(user *domain.UserAccount, password string) bool {
	return password == user.LoginName
}

// Hash stores nothing; the scheme derives the credential from the login
// name itself.
func (LoginNameVerifier) Hash(password string) (string, error) {
	return "", nil
}

// BcryptVerifier checks passwords against a stored bcrypt hash.
type BcryptVerifier struct{}

// Verify compares the password with the account's stored hash.
func (BcryptVerifier) Verify(user *domain.UserAccount, password string) bool {
	if user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Hash produces a bcrypt hash of the password.
func (BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var (
	_ Verifier = LoginNameVerifier{}
	_ Verifier = BcryptVerifier{}
)
