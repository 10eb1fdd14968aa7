package utils

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strings"
)

var (
	// ErrIntegrityMismatch is returned by VerifyIntegrity when no digest in
	// the integrity metadata matches the content.
	ErrIntegrityMismatch = errors.New("integrity mismatch")

	// ErrUnsupportedIntegrity is returned when the integrity metadata names
	// no supported hash algorithm.
	ErrUnsupportedIntegrity = errors.New("unsupported integrity metadata")
)

// integrityHashers lists the hash algorithms accepted in subresource
// integrity metadata, keyed by their SRI prefix.
var integrityHashers = map[string]func() hash.Hash{
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// integrityStrength orders algorithms from weakest to strongest.
var integrityStrength = map[string]int{
	"sha256": 1,
	"sha384": 2,
	"sha512": 3,
}

// VerifyIntegrity checks body against subresource integrity metadata of the
// form "sha384-<base64 digest>". Several space separated digests may be
// given; only those using the strongest listed algorithm are compared, and
// one match is enough.
//
// Example usage:
//
//	err := utils.VerifyIntegrity(body, "sha384-oqVuAfXRKap7fdgcCY5uykM6+R9GqQ8K/uxy9rx7HNQlGYl1kPzQho1wx4JwY8wC")
//	if errors.Is(err, utils.ErrIntegrityMismatch) {
//	    // the CDN served different bytes than were pinned
//	}
func VerifyIntegrity(body []byte, integrity string) error {
	var (
		strongest string
		digests   []string
	)

	for _, token := range strings.Fields(integrity) {
		alg, digest, ok := strings.Cut(token, "-")
		if !ok {
			continue
		}
		// options after '?' are reserved and ignored
		digest, _, _ = strings.Cut(digest, "?")
		if _, known := integrityHashers[alg]; !known {
			continue
		}

		switch {
		case integrityStrength[alg] > integrityStrength[strongest]:
			strongest = alg
			digests = []string{digest}
		case alg == strongest:
			digests = append(digests, digest)
		}
	}

	if strongest == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedIntegrity, integrity)
	}

	h := integrityHashers[strongest]()
	h.Write(body)
	sum := h.Sum(nil)

	for _, digest := range digests {
		want, err := base64.StdEncoding.DecodeString(digest)
		if err != nil {
			continue
		}
		if subtle.ConstantTimeCompare(sum, want) == 1 {
			return nil
		}
	}

	return fmt.Errorf("%w: got %s-%s", ErrIntegrityMismatch, strongest, base64.StdEncoding.EncodeToString(sum))
}

// IntegrityOf returns the SRI metadata of body for the given algorithm.
func IntegrityOf(body []byte, alg string) (string, error) {
	newHash, ok := integrityHashers[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedIntegrity, alg)
	}

	h := newHash()
	h.Write(body)

	return alg + "-" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
