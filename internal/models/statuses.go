package models

type JobStatus string

const (
	JobStatusOpen    JobStatus = "Open"
	JobStatusClosed  JobStatus = "Closed"
	JobStatusDeleted JobStatus = "Deleted"
)

// IsValid проверяет, что статус из допустимого набора
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDeleted:
		return true
	}
	return false
}
