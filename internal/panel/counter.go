package panel

// PressCounter tracks presses per label for the lifetime of the process.
// It is not safe for concurrent use; all access happens on the UI thread.
type PressCounter struct {
	counts map[string]int
}

// NewPressCounter returns a counter with every label seeded at zero
func NewPressCounter(labels ...string) *PressCounter {
	c := &PressCounter{counts: make(map[string]int, len(labels))}
	for _, label := range labels {
		c.Seed(label)
	}

	return c
}

// Seed registers label at zero unless it is already known
func (c *PressCounter) Seed(label string) {
	if _, ok := c.counts[label]; !ok {
		c.counts[label] = 0
	}
}

// Increment adds one press for label and returns the new count
func (c *PressCounter) Increment(label string) int {
	c.counts[label]++
	return c.counts[label]
}

// Count returns the presses recorded for label
func (c *PressCounter) Count(label string) int {
	return c.counts[label]
}

// Labels returns the number of distinct labels being counted
func (c *PressCounter) Labels() int {
	return len(c.counts)
}
