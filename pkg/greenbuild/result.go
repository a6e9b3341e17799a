package greenbuild

// ErrKind classifies store operation failures so callers can branch without
// parsing message strings.
type ErrKind int

const (
	ErrNone ErrKind = iota
	// ErrValidation is rejected client-side; no request was made.
	ErrValidation
	// ErrRemote is a failed request; Message carries the server-provided
	// text when the response had one, a generic fallback otherwise.
	ErrRemote
)

type Result struct {
	OK      bool
	Kind    ErrKind
	Message string
}

func ok() Result {
	return Result{OK: true}
}

func failValidation(msg string) Result {
	return Result{Kind: ErrValidation, Message: msg}
}

func failRemote(msg string) Result {
	return Result{Kind: ErrRemote, Message: msg}
}
