package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_ShouldDecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))

	assert.Equal(t, "raw", DecorateText("raw", MessageType(42)))
}

func TestUtils_ShouldFormatValue(t *testing.T) {
	assert.Equal(t, "17", FormatValue(17))
	assert.Equal(t, "19.5", FormatValue(19.5))
	assert.Equal(t, "18.82", FormatValue(18.8235294))
	assert.Equal(t, "+Inf", FormatValue(math.Inf(1)))
}
