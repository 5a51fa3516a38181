// Package secrets resolves mail credentials: OS keychain first, env var
// fallback for headless runs (CI schedulers have no keychain).
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the watcher's secrets in the OS keychain.
const KeyringService = "jobwatch"

// Get looks up account's password in the keychain, then in envVar.
func Get(account, envVar string) (string, error) {
	if strings.TrimSpace(account) != "" {
		pw, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}
	if envVar != "" {
		if pw := strings.TrimSpace(os.Getenv(envVar)); pw != "" {
			return pw, nil
		}
	}
	return "", errors.New("password not found in keychain or environment")
}

func Set(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

// SMTPAccount and IMAPAccount name the keychain entries for a mailbox user.
func SMTPAccount(username string) string { return "jobwatch:smtp:" + username }
func IMAPAccount(username string) string { return "jobwatch:imap:" + username }
