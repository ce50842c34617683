package provider

import "fmt"

// UnsupportedProviderError means no adapter exists for the configured
// provider identity. Fatal at startup.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("provider %q is not supported", e.Provider)
}

// TransportError covers network failures and non-2xx HTTP results. It keeps
// the raw status and body for diagnostics.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai transport failure: %v", e.Err)
	}
	return fmt.Sprintf("ai transport failure: status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedEnvelopeError means the vendor response did not contain the
// expected content path, or the content there was empty.
type MalformedEnvelopeError struct {
	Provider string
	Reason   string
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("%s response envelope malformed: %s", e.Provider, e.Reason)
}
