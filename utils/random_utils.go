package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
)

// RandomInt32 generates a secure random 32-bit integer
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomToken generates a secure random hex string of 2*n characters. Used
// for the unusable passwords of OAuth-provisioned accounts.
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("generate random token failed")
	}
	return hex.EncodeToString(buf)
}
