// Package models defines the transient, in-memory values that flow through
// the filedrop client workflow: the file picked for upload, the download
// code a user types, the metadata the API returns for a code and the
// explicit upload workflow state.
//
// Nothing here is persisted; every value lives for one workflow pass.
package models
