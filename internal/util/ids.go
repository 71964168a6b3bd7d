package util

import "regexp"

// Entity identifiers in the dataset export follow a "<digits>-<digits>"
// convention, e.g. "234500-68". The same id space covers companies,
// investors, people and every other entity type.
var reEntityID = regexp.MustCompile(`^[0-9]+-[0-9]+$`)

// ValidEntityID reports whether s matches the dataset identifier format.
func ValidEntityID(s string) bool {
	return reEntityID.MatchString(s)
}
