package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerators(t *testing.T) {
	pc := NewProductCode()
	assert.True(t, strings.HasPrefix(pc, "PC-"))
	assert.Len(t, pc, 11)
	assert.Equal(t, strings.ToUpper(pc), pc)

	rf := NewReferralCode()
	assert.True(t, strings.HasPrefix(rf, "RF-"))
	assert.Len(t, rf, 11)

	assert.NotEqual(t, NewProductCode(), NewProductCode())
}
