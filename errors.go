package pnplog

// DuplicateInstanceError is returned by New when a Logger already exists in
// this process.
type DuplicateInstanceError struct{}

func (e *DuplicateInstanceError) Error() string {
	return errMsgDuplicate
}
