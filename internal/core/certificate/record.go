package certificate

// NotFound is the value of every field whose pattern did not match.
const NotFound = "Not Found"

// Record holds the fields extracted from a certificate's OCR text
type Record struct {
	EnrollmentNo  string `json:"enrollment_no"`
	DCNo          string `json:"dc_no"`
	Name          string `json:"name"`
	Degree        string `json:"degree"`
	YearOfPassing string `json:"year_of_passing"`
	Division      string `json:"division"`
	Institution   string `json:"institution"`
}

// NewRecord returns a record with every field set to NotFound
func NewRecord() *Record {
	return &Record{
		EnrollmentNo:  NotFound,
		DCNo:          NotFound,
		Name:          NotFound,
		Degree:        NotFound,
		YearOfPassing: NotFound,
		Division:      NotFound,
		Institution:   NotFound,
	}
}

// Map returns the record as a field name -> value mapping
func (r *Record) Map() map[string]string {
	return map[string]string{
		"enrollment_no":   r.EnrollmentNo,
		"dc_no":           r.DCNo,
		"name":            r.Name,
		"degree":          r.Degree,
		"year_of_passing": r.YearOfPassing,
		"division":        r.Division,
		"institution":     r.Institution,
	}
}

// Found returns how many fields hold a matched value
func (r *Record) Found() int {
	n := 0
	for _, v := range r.Map() {
		if v != NotFound {
			n++
		}
	}
	return n
}
