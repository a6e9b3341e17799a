package greenbuild

// Notifier is the fire-and-forget toast sink. Implementations must not
// block; the stores never wait on or read back from it.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
