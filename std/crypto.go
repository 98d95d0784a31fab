package std

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/mrya-lang/mrya/values"
)

// NewCryptoModule builds the `crypto` native module (spec §7 Domain stack).
// Grounded on the teacher's std/crypto.go hashing wrappers; uuid generation
// is new, pulled from the example pack's google/uuid dependency since the
// distilled spec's error model (structured, typed errors) invites a real
// unique-id type for error/request correlation.
func NewCryptoModule() *values.Module {
	b := NewModule("crypto")
	b.Func("sha256", 1, cryptoSHA256)
	b.Func("md5", 1, cryptoMD5)
	b.Func("uuid", 0, cryptoUUID)
	return b.Build()
}

// Syntax: sha256(s) -- hex digest
func cryptoSHA256(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("sha256", 0, "string", args[0])
	}
	sum := sha256.Sum256([]byte(s))
	return Str(hex.EncodeToString(sum[:])), nil
}

// Syntax: md5(s) -- hex digest
func cryptoMD5(args []values.Value) (values.Value, error) {
	s, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("md5", 0, "string", args[0])
	}
	sum := md5.Sum([]byte(s))
	return Str(hex.EncodeToString(sum[:])), nil
}

// Syntax: uuid() -- a random (v4) UUID string
func cryptoUUID(args []values.Value) (values.Value, error) {
	return Str(uuid.NewString()), nil
}
