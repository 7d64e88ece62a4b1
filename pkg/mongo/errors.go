package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")

	ErrStorageFetch   = errors.New("mongo: failed to fetch session")
	ErrStoragePersist = errors.New("mongo: failed to persist session")
	ErrStorageDelete  = errors.New("mongo: failed to delete session")
	ErrCreateIndex    = errors.New("mongo: failed to create session index")
)
