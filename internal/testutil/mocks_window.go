package testutil

import "github.com/Norgate-AV/clippanel/internal/windows"

// MockWindow implements interfaces.Window and records every move
type MockWindow struct {
	Pos         windows.Point
	MoveToCalls []windows.Point
}

func NewMockWindow() *MockWindow {
	return &MockWindow{
		MoveToCalls: []windows.Point{},
	}
}

func (m *MockWindow) WithPosition(x, y int) *MockWindow {
	m.Pos = windows.Point{X: x, Y: y}
	return m
}

func (m *MockWindow) Position() windows.Point {
	return m.Pos
}

func (m *MockWindow) MoveTo(pos windows.Point) {
	m.MoveToCalls = append(m.MoveToCalls, pos)
	m.Pos = pos
}

// MockPointerSurface implements interfaces.PointerSurface. Tests drive it
// through Press and Move.
type MockPointerSurface struct {
	pressHandlers []func(windows.Point)
	moveHandlers  []func(windows.Point, bool)
}

func NewMockPointerSurface() *MockPointerSurface {
	return &MockPointerSurface{}
}

func (m *MockPointerSurface) OnPress(handler func(at windows.Point)) {
	m.pressHandlers = append(m.pressHandlers, handler)
}

func (m *MockPointerSurface) OnMove(handler func(at windows.Point, primaryHeld bool)) {
	m.moveHandlers = append(m.moveHandlers, handler)
}

// Press simulates the primary button going down at x, y
func (m *MockPointerSurface) Press(x, y int) {
	for _, h := range m.pressHandlers {
		h(windows.Point{X: x, Y: y})
	}
}

// Move simulates the pointer moving to x, y
func (m *MockPointerSurface) Move(x, y int, primaryHeld bool) {
	for _, h := range m.moveHandlers {
		h(windows.Point{X: x, Y: y}, primaryHeld)
	}
}

// MockClickable implements interfaces.Clickable
type MockClickable struct {
	handlers []func()
}

func NewMockClickable() *MockClickable {
	return &MockClickable{}
}

// NewMockClickables returns n independent clickables
func NewMockClickables(n int) []*MockClickable {
	out := make([]*MockClickable, n)
	for i := range out {
		out[i] = NewMockClickable()
	}

	return out
}

func (m *MockClickable) OnClick(handler func()) {
	m.handlers = append(m.handlers, handler)
}

// Click simulates the control being activated
func (m *MockClickable) Click() {
	for _, h := range m.handlers {
		h()
	}
}
