package component

// IntentComponent mirrors which directional keys are currently held
// Both flags may be set at once
type IntentComponent struct {
	Left  bool
	Right bool
}

// Clear releases both directions
func (i *IntentComponent) Clear() {
	i.Left = false
	i.Right = false
}
