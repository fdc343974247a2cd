package datastore

import (
	"errors"

	"github.com/0xalexb/hjarta-datastore/keypath"
)

// ErrInvalidKeyPath is returned when the raw keypath string cannot be parsed.
// It aliases keypath.ErrInvalidKeyPath so callers can match either one.
var ErrInvalidKeyPath = keypath.ErrInvalidKeyPath

// ErrKeyNotFound is returned when an explicit key lookup misses, or when a
// candidate search exhausts every interpretation without a match.
var ErrKeyNotFound = errors.New("key not found")

// ErrRead is returned when an explicitly named file cannot be read.
var ErrRead = errors.New("reading file failed")

// ErrDataParse is returned when data does not match the requested shape.
var ErrDataParse = errors.New("data does not match the requested shape")

// ErrEmptyKeys is returned when an explicit key-chain lookup is given no keys.
var ErrEmptyKeys = errors.New("key list must not be empty")

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")
