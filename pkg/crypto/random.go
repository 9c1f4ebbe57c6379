package crypto

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"io"
)

// GenerateRandomString returns a URL-safe random string of the given
// length.
func GenerateRandomString(length int) (string, error) {
	return randomString(length, rand.Reader)
}

func randomString(length int, rng io.Reader) (string, error) {
	bytes := make([]byte, length)
	if _, err := io.ReadFull(rng, bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes)[:length], nil
}

// newSeedReader returns a deterministic byte stream derived from the
// seed via SHA-512 chaining. Half of each digest feeds the next
// state, the other half is emitted.
func newSeedReader(seed string) io.Reader {
	return &seedReader{state: []byte(seed)}
}

type seedReader struct {
	state []byte
}

func (r *seedReader) cycle() []byte {
	sum := sha512.Sum512(r.state)
	r.state = sum[:sha512.Size/2]
	return sum[sha512.Size/2:]
}

func (r *seedReader) Read(b []byte) (int, error) {
	// crypto/ecdsa may probe the reader with a single throwaway byte.
	// Refusing the read without advancing state keeps the stream
	// aligned, so key derivation stays reproducible.
	if len(b) == 1 {
		return 0, errSingleByteRead
	}

	n := 0
	for n < len(b) {
		n += copy(b[n:], r.cycle())
	}
	return n, nil
}

var errSingleByteRead = errors.New("seed reader does not serve single-byte reads")
