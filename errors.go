package hdrloader

import "errors"

// ErrorKind classifies a load failure. New kinds may be added.
type ErrorKind int

const (
	// KindUnknown is reported by KindOf for errors not produced by this package.
	KindUnknown ErrorKind = iota
	// KindIO means the input stream failed before yielding the whole file.
	KindIO
	// KindDecode means the decoder rejected the input as malformed or truncated.
	KindDecode
	// KindSettings means the loader settings sidecar could not be parsed.
	KindSettings
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrIO       = errors.New("hdrloader: io error")
	ErrDecode   = errors.New("hdrloader: decode error")
	ErrSettings = errors.New("hdrloader: settings error")
)

// Error is returned by Loader for every failed load, Err holds the underlying cause.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var msg string
	switch e.Kind {
	case KindIO:
		msg = "could not load texture"
	case KindDecode:
		msg = "could not extract image"
	case KindSettings:
		msg = "could not parse loader settings"
	default:
		msg = "hdr load failed"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrSettings:
		return e.Kind == KindSettings
	default:
		return false
	}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, err error) error {
	return &Error{Kind: kind, Err: err}
}
