package eimzo

import "github.com/pkg/errors"

// Subject kinds derived from certificate subject attributes.
const (
	UserTypePhysical  = 1
	UserTypeJuridical = 2
)

// O'zbekiston national PKI OIDs carried in the certificate subject. The
// juridical OID marks the organisation's TIN, the physical OID the personal
// identification number.
const (
	oidJuridical = "1.2.860.3.16.1.1"
	oidPhysical  = "1.2.860.3.16.1.2"
)

// ErrUserTypeUndetermined reports a subject carrying neither national OID.
var ErrUserTypeUndetermined = errors.New("Could not determine user type")

// ClassifyUserType maps certificate subject attributes to a user type. A
// juridical certificate also carries the physical OID of its signer, so the
// juridical OID is checked first.
func ClassifyUserType(subject map[string]string) (int, error) {
	if _, ok := subject[oidJuridical]; ok {
		return UserTypeJuridical, nil
	}
	if _, ok := subject[oidPhysical]; ok {
		return UserTypePhysical, nil
	}
	return 0, ErrUserTypeUndetermined
}
