package entity

import (
	"crypto/rand"
	"strings"
)

// voucherAlphabet excludes characters that are easy to confuse on a printed
// voucher (0/O, 1/I). Its length is exactly 32 so a masked random byte maps
// uniformly onto it.
const voucherAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// defaultVoucherPrefix is used when the brand yields no usable letters.
const defaultVoucherPrefix = "ECO"

const voucherBlockLength = 4

// VoucherPrefix derives the code prefix from a reward brand: uppercased,
// filtered to letters, truncated to four characters.
func VoucherPrefix(brand string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(brand) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == voucherBlockLength {
				break
			}
		}
	}
	if b.Len() == 0 {
		return defaultVoucherPrefix
	}
	return b.String()
}

// NewVoucherCode generates a redemption code of the form PREFIX-XXXX-XXXX.
// Codes are not guaranteed globally unique; the redemptions table does not
// enforce a uniqueness constraint on them.
func NewVoucherCode(brand string) string {
	return VoucherPrefix(brand) + "-" + randomVoucherBlock() + "-" + randomVoucherBlock()
}

func randomVoucherBlock() string {
	buf := make([]byte, voucherBlockLength)
	// crypto/rand.Read never fails on supported platforms; fall back to the
	// first alphabet character if it ever does.
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat(string(voucherAlphabet[0]), voucherBlockLength)
	}

	out := make([]byte, voucherBlockLength)
	for i, b := range buf {
		out[i] = voucherAlphabet[int(b)&(len(voucherAlphabet)-1)]
	}
	return string(out)
}
