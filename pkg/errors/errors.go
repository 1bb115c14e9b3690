package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrAdminNotFound        = errors.New("admin not found")
	ErrAdminDisabled        = errors.New("admin disabled")
	ErrInvalidAdminPassword = errors.New("invalid admin password")

	ErrEmptyUpload     = errors.New("empty upload")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUploadTooLarge  = errors.New("upload too large")
	ErrNotText         = errors.New("upload is not a text hand history")

	ErrResultNotFound = errors.New("tournament result not found")

	ErrPointsEntryNotFound  = errors.New("points entry not found")
	ErrInvalidPointsPayload = errors.New("invalid points payload")
)
