package models

// UploadState is the tag of the upload workflow state.
type UploadState string

const (
	// UploadStateIdle means nothing is selected.
	UploadStateIdle UploadState = "Idle"

	// UploadStateFileSelected means a file passed validation and waits for upload.
	UploadStateFileSelected UploadState = "FileSelected"

	// UploadStateUploading means the upload request is in flight.
	UploadStateUploading UploadState = "Uploading"

	// UploadStateSucceeded means the server issued a download code.
	UploadStateSucceeded UploadState = "UploadSucceeded"

	// UploadStateFailed is transient: the workflow resets to Idle right after it.
	UploadStateFailed UploadState = "UploadFailed"
)

func (s UploadState) String() string {
	return string(s)
}

// IsActive reports whether an upload request is in flight.
func (s UploadState) IsActive() bool {
	return s == UploadStateUploading
}

// IsFinished reports whether the state is a terminal upload outcome.
func (s UploadState) IsFinished() bool {
	return s == UploadStateSucceeded || s == UploadStateFailed
}

// WorkflowState is a snapshot of the upload sub-workflow.
//
// Which fields are meaningful depends on Status:
//   - Idle:            none
//   - FileSelected:    File, SizeLabel
//   - Uploading:       File, SizeLabel, Progress
//   - UploadSucceeded: File, SizeLabel, Progress, Code
//   - UploadFailed:    File, SizeLabel, Error
type WorkflowState struct {
	Status    UploadState
	File      *PendingFile
	SizeLabel string
	Progress  float64
	Code      string
	Error     string
}

// IdleState returns the initial workflow state.
func IdleState() WorkflowState {
	return WorkflowState{Status: UploadStateIdle}
}
