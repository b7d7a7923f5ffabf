package medinfo

import "fmt"

// Kind classifies the outcome of a lookup.
type Kind int

const (
	// KindFound means the description marker was present.
	KindFound Kind = iota
	// KindNotFound means the page loaded but had no description marker.
	KindNotFound
	// KindStatus means the site answered with a non-200 status.
	KindStatus
	// KindNetwork means the request or the HTML parse failed.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not_found"
	case KindStatus:
		return "status"
	case KindNetwork:
		return "network"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// User-visible lookup messages.
const (
	MessageStatus   = "Error fetching data from 1mg."
	MessageNotFound = "No information found for this medicine on 1mg."
)

// Result is the typed outcome of a lookup.
type Result struct {
	Kind       Kind
	Text       string
	StatusCode int
	Err        error
}

// Message renders the result as the text flashed to the user.
func (r Result) Message() string {
	switch r.Kind {
	case KindFound:
		return r.Text
	case KindNotFound:
		return MessageNotFound
	case KindStatus:
		return MessageStatus
	default:
		return fmt.Sprintf("An error occurred: %v", r.Err)
	}
}
