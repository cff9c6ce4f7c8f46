package api_keys

type ApiKeyStatus string

const (
	ApiKeyStatusActive   ApiKeyStatus = "ACTIVE"
	ApiKeyStatusDisabled ApiKeyStatus = "DISABLED"
	// cache marker for hashes with no stored key
	ApiKeyStatusNotFound ApiKeyStatus = "NOT_FOUND"
)

// IsAssignable reports whether a client may set the status
func (s ApiKeyStatus) IsAssignable() bool {
	return s == ApiKeyStatusActive || s == ApiKeyStatusDisabled
}
