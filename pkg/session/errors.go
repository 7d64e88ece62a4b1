package session

import "errors"

var (
	// ErrNoSession indicates no session with the requested name is attached to the context
	ErrNoSession = errors.New("session.not_in_context")

	// ErrEncode indicates session data could not be serialized
	ErrEncode = errors.New("session.encode_failed")

	// ErrPersist indicates the store failed to write the session
	ErrPersist = errors.New("session.persist_failed")

	// ErrDelete indicates the store failed to delete the session
	ErrDelete = errors.New("session.delete_failed")

	// ErrSave is returned by writes to a response whose session could not be saved
	ErrSave = errors.New("session.save_failed")

	// ErrInvalidConfig indicates the manager configuration is unusable
	ErrInvalidConfig = errors.New("session.invalid_config")

	// ErrDuplicateNamespace indicates two managers share a cookie name, prefix or session name
	ErrDuplicateNamespace = errors.New("session.duplicate_namespace")
)
