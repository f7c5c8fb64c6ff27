package artifact

import (
	"errors"
	"fmt"
)

var (
	ErrArtifactNotFound = errors.New("build artifact not found")
	ErrArtifactParse    = errors.New("build artifact is not a valid JSON object")
	ErrMissingAbiField  = errors.New("build artifact has no abi field")
)

type ArtifactNotFoundError struct {
	Path string
	Err  error
}

func (e *ArtifactNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrArtifactNotFound, e.Path)
}

func (e *ArtifactNotFoundError) Unwrap() []error {
	return []error{ErrArtifactNotFound, e.Err}
}

type ArtifactParseError struct {
	Path string
	Err  error
}

func (e *ArtifactParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrArtifactParse, e.Path, e.Err)
}

func (e *ArtifactParseError) Unwrap() []error {
	return []error{ErrArtifactParse, e.Err}
}

type MissingAbiFieldError struct {
	Path string
}

func (e *MissingAbiFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingAbiField, e.Path)
}

func (e *MissingAbiFieldError) Unwrap() error {
	return ErrMissingAbiField
}
