package usecase

import "fmt"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("chat use case persistence error")

// ErrStorage indicates a blob-store failure during media handling. The
// message is never persisted when this happens.
var ErrStorage = fmt.Errorf("chat use case storage error")
