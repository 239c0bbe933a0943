package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/bookshelf/internal/config"
	"github.com/mmcdole/bookshelf/internal/console"
)

func Test_NewClearer(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, console.NopClearer{}, console.NewClearer(&buf, config.ClearNever))
	assert.IsType(t, console.ANSIClearer{}, console.NewClearer(&buf, config.ClearAlways))
	// A buffer is never a terminal
	assert.IsType(t, console.NopClearer{}, console.NewClearer(&buf, config.ClearAuto))
}

func Test_ANSIClearer(t *testing.T) {
	var buf bytes.Buffer

	console.ANSIClearer{W: &buf}.Clear()

	assert.Equal(t, ansiClear, buf.String())
}
