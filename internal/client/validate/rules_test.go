package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NotEmpty(t, Username(""))
	assert.NotEmpty(t, Username("  "))
	assert.NotEmpty(t, Username("ab"))
	assert.Empty(t, Username("bob"))
	assert.Empty(t, Username("bob123"))
}

func TestPassword(t *testing.T) {
	assert.NotEmpty(t, Password(""))
	assert.NotEmpty(t, Password("abc"), "3 characters must be rejected")
	assert.NotEmpty(t, Password("abcde"))
	assert.Empty(t, Password("abcdef"), "6 characters must pass")
	assert.Empty(t, Password("secret1"))
}

func TestNickname(t *testing.T) {
	assert.NotEmpty(t, Nickname(""))
	assert.NotEmpty(t, Nickname("   "))
	assert.Empty(t, Nickname("Bobby"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"", false},
		{"bob", false},
		{"bob@", false},
		{"bob@example", false},
		{"bob @example.com", false},
		{"bob@example.com", true},
		{"a.b+c@sub.example.org", true},
	}
	for _, tt := range tests {
		if tt.ok {
			assert.Empty(t, Email(tt.in), tt.in)
		} else {
			assert.NotEmpty(t, Email(tt.in), tt.in)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"13812345678", true},
		{"19912345678", true},
		{"12812345678", false}, // second digit out of range
		{"23812345678", false}, // does not start with 1
		{"1381234567", false},  // too short
		{"138123456789", false},
		{"1381234567a", false},
	}
	for _, tt := range tests {
		if tt.ok {
			assert.Empty(t, Phone(tt.in), tt.in)
		} else {
			assert.NotEmpty(t, Phone(tt.in), tt.in)
		}
	}
}

func TestEmailCode(t *testing.T) {
	assert.NotEmpty(t, EmailCode(""))
	assert.Empty(t, EmailCode("135790"))
}
