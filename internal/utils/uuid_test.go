package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	assert.Len(t, id, 32)

	other := GenerateUUID()
	assert.NotEqual(t, id, other)
}
