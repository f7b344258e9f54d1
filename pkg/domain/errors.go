package domain

import "errors"

// ErrInvalidSymbol is returned when a token is not exactly one alphanumeric character.
var ErrInvalidSymbol = errors.New("invalid symbol")

// ErrInvalidState is returned when a token is not a non-empty alphanumeric identifier.
var ErrInvalidState = errors.New("invalid state")

// ErrDuplicate is returned when declaring a symbol or state that already exists.
var ErrDuplicate = errors.New("already declared")

// ErrNotFound is returned when a referenced state or symbol does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoInitialState is returned when an operation requires an initial state and none is set.
var ErrNoInitialState = errors.New("no initial state defined")

// ErrUnknownSymbol is returned when an input contains a character outside the alphabet.
var ErrUnknownSymbol = errors.New("symbol not recognized")

// ErrArtifactNotFound is returned by stores when a named artifact does not exist.
var ErrArtifactNotFound = errors.New("artifact not found")

// ErrInvalidInput is returned when a simulation input is not a non-empty alphanumeric string.
var ErrInvalidInput = errors.New("invalid input")
