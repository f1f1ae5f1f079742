package certificate

import (
	"regexp"
	"strings"
)

// Each pattern captures the span between two landmark phrases. Lazy spans stop at the
// nearest closing landmark so a later repeat of the same phrase is never swallowed.
var (
	idPattern          = regexp.MustCompile(`(?i)Enrolment No\.?:\s*(\S+)\s*Dc:\s*(\S+)`)
	namePattern        = regexp.MustCompile(`(?is)conferred upon\s(.*?)\sthe degree of`)
	degreePattern      = regexp.MustCompile(`(?is)the degree of\s(.*?)\shaving passed the examination`)
	yearPattern        = regexp.MustCompile(`(?i)examination of\s(\d{4})`)
	divisionPattern    = regexp.MustCompile(`(?is)\bin\s(.*?)Division`)
	institutionPattern = regexp.MustCompile(`\b(?:[A-Z][A-Za-z]+\s*){1,3}(?i:UNIVERSITY|INSTITUTE|COLLEGE)`)
)

// Extract pulls the certificate fields out of OCR text.
// Every lookup runs independently against the whole text; a lookup that
// finds nothing leaves its field at NotFound.
func Extract(text string) *Record {
	record := NewRecord()

	if m := idPattern.FindStringSubmatch(text); m != nil {
		record.EnrollmentNo = strings.TrimSpace(m[1])
		record.DCNo = strings.TrimSpace(m[2])
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		record.Name = strings.TrimSpace(m[1])
	}

	if m := degreePattern.FindStringSubmatch(text); m != nil {
		record.Degree = strings.TrimSpace(m[1])
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		record.YearOfPassing = m[1]
	}

	if m := divisionPattern.FindStringSubmatch(text); m != nil {
		record.Division = strings.TrimSpace(m[1]) + " Division"
	}

	if m := institutionPattern.FindString(text); m != "" {
		record.Institution = strings.TrimSpace(m)
	}

	return record
}
