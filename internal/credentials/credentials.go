// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"

	"github.com/ns1ctl/ns1ctl/internal/config"
)

const (
	pbkdf2Iterations = 600000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// ErrNoCredentials is returned when no API key can be resolved from any
// source.
var ErrNoCredentials = errors.New("no NS1 API key found")

// keyfile is the on-disk envelope of an encrypted API key.
type keyfile struct {
	Meta struct {
		Salt       string `json:"salt"`
		Iterations int    `json:"iterations"`
		HashFunc   string `json:"hash_function"`
		KeyLength  int    `json:"key_length"`
	} `json:"meta"`
	EncryptedKey string `json:"encrypted_key"`
}

// Resolve returns the API key following this precedence:
//  1. --apikey flag value
//  2. NS1_APIKEY environment variable
//  3. apikey from the ns1ctl config file
//  4. encrypted keyfile (NS1CTL_KEYFILE or <user config dir>/ns1ctl.keyfile),
//     unlocked with the passphrase flag, NS1CTL_PASSPHRASE, or an
//     interactive prompt
func Resolve(flagKey, flagPassphrase string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}

	if key, ok := os.LookupEnv("NS1_APIKEY"); ok && key != "" {
		return key, nil
	}

	if key, err := config.GetString("apikey"); err == nil && key != "" {
		return key, nil
	}

	path, ok := keyfilePath()
	if !ok {
		return "", ErrNoCredentials
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read keyfile %s: %w", path, err)
	}

	passphrase := flagPassphrase
	if passphrase == "" {
		passphrase = os.Getenv("NS1CTL_PASSPHRASE")
	}
	if passphrase == "" {
		passphrase, err = GetPassphrase()
		if err != nil {
			return "", err
		}
	}

	key, err := Decrypt(data, passphrase)
	if err != nil {
		return "", fmt.Errorf("failed to unlock keyfile %s: %w", path, err)
	}
	return key, nil
}

// keyfilePath locates the encrypted keyfile, if one exists.
func keyfilePath() (string, bool) {
	if path, ok := os.LookupEnv("NS1CTL_KEYFILE"); ok && path != "" {
		return path, true
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}

	path := filepath.Join(dir, "ns1ctl.keyfile")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Encrypt seals an API key under a passphrase and returns the keyfile
// content.
func Encrypt(key, passphrase string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	derived := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, pbkdf2KeyLength, sha512.New)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Nonce is prefixed to the ciphertext, same layout Decrypt expects.
	sealed := aesGCM.Seal(nonce, nonce, []byte(key), nil)

	var kf keyfile
	kf.Meta.Salt = base64.StdEncoding.EncodeToString(salt)
	kf.Meta.Iterations = pbkdf2Iterations
	kf.Meta.HashFunc = "sha512"
	kf.Meta.KeyLength = pbkdf2KeyLength
	kf.EncryptedKey = base64.StdEncoding.EncodeToString(sealed)

	return json.MarshalIndent(kf, "", "  ")
}

// Decrypt opens a keyfile with the given passphrase and returns the API
// key inside.
func Decrypt(data []byte, passphrase string) (string, error) {
	var kf keyfile
	if err := json.Unmarshal(data, &kf); err != nil {
		return "", fmt.Errorf("failed to parse keyfile: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(kf.Meta.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	sealed, err := base64.StdEncoding.DecodeString(kf.EncryptedKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode encrypted key: %w", err)
	}

	derived := pbkdf2.Key([]byte(passphrase), salt, kf.Meta.Iterations, kf.Meta.KeyLength, sha512.New)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(sealed) < nonceSize {
		return "", fmt.Errorf(
			"keyfile too short: expected at least %d bytes, got %d",
			nonceSize,
			len(sealed),
		)
	}

	plaintext, err := aesGCM.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

// GetPassphrase prompts interactively for a passphrase without echoing input.
func GetPassphrase() (string, error) {
	var password []byte
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt)

	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	defer term.Restore(int(syscall.Stdin), oldState) //nolint:errcheck

	fmt.Print("Enter passphrase: ")
	defer fmt.Print("\r")

loop:
	for {
		select {
		case <-signalChannel:
			fmt.Println("\nInterrupt received, exiting...")
			return "", fmt.Errorf("interrupted")
		default:
			var buf [1]byte
			n, readErr := syscall.Read(syscall.Stdin, buf[:])
			if readErr != nil || n == 0 {
				break loop
			}
			if buf[0] == '\n' || buf[0] == '\r' {
				break loop
			}
			if buf[0] == 127 || buf[0] == 8 { // Handle backspace
				if len(password) > 0 {
					password = password[:len(password)-1]
					fmt.Print("\b \b")
				}
			} else {
				password = append(password, buf[0])
				fmt.Print("*")
			}
		}
	}
	fmt.Println()
	return string(password), nil
}
