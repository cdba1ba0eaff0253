package models

// Per-column byte bounds of the flat file format. Admission-time checks and
// the file codec enforce the same limits, so an accepted record always
// reloads. The password column holds a bcrypt hash (60 bytes), so its bound
// is bcrypt's 72-byte input limit rather than the legacy 49.
const (
	MaxUsernameLen = 49
	MaxEmailLen    = 99
	MaxPhoneLen    = 14
	MaxPasswordLen = 72
	MaxRoleLen     = 19

	MaxItemNameLen = 49
	MaxStatusLen   = 19
)
