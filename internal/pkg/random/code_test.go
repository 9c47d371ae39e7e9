package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_LengthAndAlphabet(t *testing.T) {
	code := Code(12)

	assert.Len(t, code, 12)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[Code(12)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDigits(t *testing.T) {
	otp := Digits(6)

	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}
