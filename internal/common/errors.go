package common

import "errors"

var (
	// Input errors.
	ErrFileTooLarge    = errors.New("file size exceeds 100MB limit")
	ErrEmptyCode       = errors.New("please enter a download code")
	ErrNoFileSelected  = errors.New("no file selected")
	ErrUploadInProcess = errors.New("an upload is already in progress")
	ErrNoDownloadCode  = errors.New("no download code to copy")

	// Save-as errors.
	ErrInvalidFileName = errors.New("invalid file name")
)
