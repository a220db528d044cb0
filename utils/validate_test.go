package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("http://x.com"))
	assert.NoError(t, ValidateURL("https://example.org/pfad?x=1"))

	assert.Error(t, ValidateURL("example.org"))
	assert.Error(t, ValidateURL("ftp://example.org"))
	assert.Error(t, ValidateURL("https://"))
	assert.Error(t, ValidateURL("::nicht-mal-eine-url::"))
}
