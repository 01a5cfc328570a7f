// Package doctor runs health checks over a template repository.
package doctor

// Status classifies a check outcome.
type Status string

const (
	StatusOK   Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
