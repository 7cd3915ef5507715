package controller

// Kind classifies why an operation failed. Successful results carry no
// kind. Nothing here is fatal: every failure leaves prior state unchanged
// and is safe to retry, except an active lockout, which is time-gated.
type Kind string

// Failure kinds.
const (
	// KindInvalidFormat indicates a malformed field (cédula shape,
	// email, login name, code, date range, negative value).
	KindInvalidFormat Kind = "invalid_format"

	// KindChecksumFailed indicates a well-formed cédula whose check
	// digit does not match.
	KindChecksumFailed Kind = "checksum_failed"

	// KindDuplicateField indicates a unique field already in use.
	KindDuplicateField Kind = "duplicate_field"

	// KindNotFound indicates a referenced entity does not exist.
	KindNotFound Kind = "not_found"

	// KindHasDependencies indicates a delete blocked by referencing
	// records.
	KindHasDependencies Kind = "has_dependencies"

	// KindAccountLocked indicates a login rejected by the throttle.
	KindAccountLocked Kind = "account_locked"

	// KindInvalidCredentials indicates a login attempt with no matching
	// active account and password.
	KindInvalidCredentials Kind = "invalid_credentials"

	// KindNoResults indicates report filters that matched nothing.
	// A soft failure, not an error.
	KindNoResults Kind = "no_results"

	// KindNoSession indicates an operation that needs an authenticated
	// user was called while logged out.
	KindNoSession Kind = "no_session"

	// KindInternal indicates an unexpected collaborator failure.
	KindInternal Kind = "internal"
)

// Result is the tagged outcome returned by every mutating operation,
// meant to be displayed by the presentation layer as a transient
// notification.
type Result struct {
	Success bool   `json:"success"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

// ReportResult is the outcome of report generation. On success it carries
// the number of matched movements and a reference to the downloadable
// artifact.
type ReportResult struct {
	Result
	Count      int    `json:"count,omitempty"`
	ArtifactID string `json:"artifact_id,omitempty"`
}

func ok(message string) Result {
	return Result{Success: true, Message: message}
}

func fail(kind Kind, message string) Result {
	return Result{Success: false, Kind: kind, Message: message}
}
