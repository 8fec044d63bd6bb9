//go:build windows

package windows

import (
	"testing"

	"github.com/lxn/win"
	"github.com/stretchr/testify/assert"
)

func TestPopupStyle(t *testing.T) {
	t.Parallel()

	overlapped := uint32(win.WS_OVERLAPPEDWINDOW | win.WS_VISIBLE | win.WS_CLIPCHILDREN)
	got := popupStyle(overlapped)

	assert.NotZero(t, got&win.WS_POPUP)
	assert.NotZero(t, got&win.WS_VISIBLE, "Unrelated styles are kept")
	assert.NotZero(t, got&win.WS_CLIPCHILDREN, "Unrelated styles are kept")
	assert.Zero(t, got&win.WS_CAPTION)
	assert.Zero(t, got&win.WS_THICKFRAME)
	assert.Zero(t, got&win.WS_SYSMENU)
	assert.Zero(t, got&(win.WS_MINIMIZEBOX|win.WS_MAXIMIZEBOX))
}

func TestRectFromWin(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		Rect{X: -10, Y: 40, Width: 130, Height: 90},
		rectFromWin(win.RECT{Left: -10, Top: 40, Right: 120, Bottom: 130}),
	)
}
