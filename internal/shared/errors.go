package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// input errors, recovered by re-prompting
const (
	ErrInvalidInput = Error("invalid input")
	ErrInputClosed  = Error("input closed")
)

// repository and service errors
const (
	ErrDuplicateEntity     = Error("already exists")
	ErrNotFound            = Error("not found")
	ErrConstraintViolation = Error("constraint violation")
	ErrStorageUnavailable  = Error("storage unavailable")
	ErrSchemaOutdated      = Error("database schema is outdated")
)
