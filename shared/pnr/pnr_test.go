package pnr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chukchukgo/shared/pnr"
)

func TestGenerate(t *testing.T) {
	for range 1000 {
		code := pnr.Generate()

		assert.Len(t, code, 10)
		assert.True(t, pnr.IsValid(code), "generated locator %q must validate", code)
		assert.NotEqual(t, byte('0'), code[0], "locator must not have a leading zero")
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "ten digits", code: "1234567890", valid: true},
		{name: "all nines", code: "9999999999", valid: true},
		{name: "empty", code: "", valid: false},
		{name: "too short", code: "123456789", valid: false},
		{name: "too long", code: "12345678901", valid: false},
		{name: "contains letter", code: "12345a7890", valid: false},
		{name: "leading whitespace", code: " 123456789", valid: false},
		{name: "trailing whitespace", code: "123456789 ", valid: false},
		{name: "signed number", code: "+123456789", valid: false},
		{name: "negative number", code: "-123456789", valid: false},
		{name: "unicode digits", code: "１２３４５６７８９０", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, pnr.IsValid(tt.code))
		})
	}
}
