package testutil

// MockClipboard implements interfaces.ClipboardSink for testing
type MockClipboard struct {
	SetTextCalls []string
	SetTextError error
	text         string
}

func NewMockClipboard() *MockClipboard {
	return &MockClipboard{
		SetTextCalls: []string{},
	}
}

// WithError makes every SetText call fail with err
func (m *MockClipboard) WithError(err error) *MockClipboard {
	m.SetTextError = err
	return m
}

func (m *MockClipboard) SetText(text string) error {
	m.SetTextCalls = append(m.SetTextCalls, text)
	if m.SetTextError != nil {
		return m.SetTextError
	}

	m.text = text
	return nil
}

// Text returns the last text successfully written
func (m *MockClipboard) Text() string {
	return m.text
}
