package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitNonEmpty(" a, ,b ,", ","))
	assert.Nil(t, SplitNonEmpty("", ","))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}
