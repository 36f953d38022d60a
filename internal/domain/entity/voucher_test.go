package entity

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoucherPrefix(t *testing.T) {
	t.Run("Brand is uppercased and truncated", func(t *testing.T) {
		assert.Equal(t, "FRES", VoucherPrefix("FreshMart"))
		assert.Equal(t, "BREW", VoucherPrefix("brewwell"))
	})

	t.Run("Non-letters are filtered out", func(t *testing.T) {
		assert.Equal(t, "AB", VoucherPrefix("a-b"))
		assert.Equal(t, "ECO", VoucherPrefix("Eco! 123"))
	})

	t.Run("Empty or unusable brand falls back", func(t *testing.T) {
		assert.Equal(t, "ECO", VoucherPrefix(""))
		assert.Equal(t, "ECO", VoucherPrefix("123 !!"))
	})
}

func TestNewVoucherCode(t *testing.T) {
	codePattern := regexp.MustCompile(`^[A-Z]{1,4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

	t.Run("Code matches the voucher format", func(t *testing.T) {
		code := NewVoucherCode("FreshMart")
		assert.Regexp(t, codePattern, code)
		assert.True(t, strings.HasPrefix(code, "FRES-"))
	})

	t.Run("Random blocks only use the safe alphabet", func(t *testing.T) {
		code := NewVoucherCode("CycleGo")
		parts := strings.Split(code, "-")
		assert.Len(t, parts, 3)
		for _, part := range parts[1:] {
			for _, r := range part {
				assert.Contains(t, voucherAlphabet, string(r))
			}
		}
	})

	t.Run("Consecutive codes differ", func(t *testing.T) {
		a := NewVoucherCode("ECO")
		b := NewVoucherCode("ECO")
		assert.NotEqual(t, a, b)
	})
}
