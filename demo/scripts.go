package demo

// Stock scripts walking a list through every removal kind.
const (
	IntScript = "append 1 2 3 4 5; remove 3; append 2 2; remove-all-of 2; " +
		"remove-head; remove-tail; clear"
	StringScript = "append apple banana citrus date elderberry; remove citrus; " +
		"append banana banana; remove-all-of banana; remove-head; remove-tail; clear"
)
