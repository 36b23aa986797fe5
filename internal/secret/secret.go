// Package secret generates account passwords and hashes them into
// crypt(3) strings accepted by chpasswd -e.
package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/GehirnInc/crypt/sha512_crypt"
)

// No 0/O, 1/l/I: generated passwords get read to users over the
// phone more often than not.
const alphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultLength = 16

// Generate returns a random password of n characters from the
// unambiguous alphabet.
func Generate(n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}
	buf := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}

// Hash produces a sha512-crypt ($6$) string with a random salt.
func Hash(password string) (string, error) {
	h, err := sha512_crypt.New().Generate([]byte(password), nil)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}
