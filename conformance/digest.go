package conformance

import (
	_ "crypto/sha256"

	"github.com/opencontainers/go-digest"

	"github.com/wippyai/valuebridge/errors"
)

// Digest summarises a byte sequence as a content digest.
func Digest(b []byte) digest.Digest {
	return digest.FromBytes(b)
}

// VerifyDigest reports whether b matches the digest string want.
func VerifyDigest(want string, b []byte) (bool, error) {
	d, err := digest.Parse(want)
	if err != nil {
		return false, errors.Wrap(errors.PhaseCheck, errors.KindInvalidInput, err, "parse digest")
	}
	v := d.Verifier()
	if _, err := v.Write(b); err != nil {
		return false, err
	}
	return v.Verified(), nil
}
