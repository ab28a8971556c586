package uploads

import "io"

// PublishInput carries one multipart upload into the publication workflow.
type PublishInput struct {
	Data        io.Reader
	Size        int64
	Filename    string
	ContentType string
	CustomName  string
	Description string
	Token       string
}

// PublishResult reports both writes independently. RecordCreated is false
// when the object write succeeded but the metadata row did not: the object
// is then orphaned in the bucket, and callers detect that through this
// flag rather than through a failed request.
type PublishResult struct {
	FileName      string
	DisplayName   string
	Description   string
	ObjectName    string
	URL           string
	Size          int64
	CourseID      string
	RecordCreated bool
}
