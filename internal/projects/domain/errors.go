package domain

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrNameRequired   = errors.New("project name required")
	ErrClientRequired = errors.New("project client required")
	ErrIDGeneration   = errors.New("failed to generate unique project id")
	ErrDuplicateID    = errors.New("project id already exists")
)
