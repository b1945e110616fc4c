package pgstore

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("pgstore: failed to parse database configuration")
	ErrFailedToOpenDBConnection = errors.New("pgstore: failed to open database connection")
	ErrHealthcheckFailed        = errors.New("pgstore: healthcheck failed")
	ErrSetDialect               = errors.New("pgstore migrator: failed to set dialect")
	ErrApplyMigrations          = errors.New("pgstore migrator: failed to apply migrations")
	ErrInvalidIdentifier        = errors.New("pgstore: invalid identifier")
	ErrInvalidID                = errors.New("pgstore: document id is not a uuid")
	ErrDuplicateID              = errors.New("pgstore: duplicate document id")
)
