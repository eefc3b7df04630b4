package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionString(t *testing.T) {
	assert.Equal(t, "Hint", ActionHint.String())
	assert.Equal(t, "Left", ActionLeft.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestInputFrameSetAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionHint)

	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionHint))
	assert.False(t, f.Has(ActionRight))

	f.Clear()
	assert.False(t, f.Has(ActionLeft))
	assert.Empty(t, f.Actions)
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionUp))

	f.Set(ActionUp)
	assert.True(t, f.Has(ActionUp))
}
