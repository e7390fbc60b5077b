package demo

//go:generate mockgen -destination=mocks/handler.go -package=mockdemo . Handler
type Handler interface {

	// Called after every step changing or inspecting the list
	OnStep(title string, rendered string, size int)

	// Called by find steps with the number of matching nodes
	OnFind(value string, found int)

	// Errors handler for failures that do not abort the script
	OnError(step string, err error)
}
