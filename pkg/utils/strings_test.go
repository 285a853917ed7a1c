package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, SplitAndTrim(""))
	assert.Equal(t, []string{"http://a", "http://b"}, SplitAndTrim(" http://a , ,http://b "))
	assert.Nil(t, SplitAndTrim(" , "))
}
