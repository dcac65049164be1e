// Package access decides whether a student's academic dashboard is shown
// in full or restricted because of outstanding fees. The decision is a
// single tagged value produced here, so handlers never scatter balance
// checks through response building.
package access

// Reason explains why a dashboard is restricted.
type Reason string

const (
	ReasonAdmissionPending Reason = "admission_fee_pending"
	ReasonFeeBalance       Reason = "fee_balance_exceeded"
)

// Message returns the student-facing text for the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonAdmissionPending:
		return "Your admission fee is still unpaid. Please contact the bursar's office."
	case ReasonFeeBalance:
		return "Your outstanding fee balance exceeds the allowed limit. Academic records are hidden until it is cleared."
	}
	return "Access restricted"
}

// Access is the policy outcome: either unrestricted, or restricted with a
// reason.
type Access struct {
	restricted bool
	reason     Reason
}

// Unrestricted grants full dashboard access.
func Unrestricted() Access {
	return Access{}
}

// Restricted denies academic data for the given reason.
func Restricted(reason Reason) Access {
	return Access{restricted: true, reason: reason}
}

// IsRestricted reports whether academic data must be hidden.
func (a Access) IsRestricted() bool {
	return a.restricted
}

// Reason returns the restriction reason; empty when unrestricted.
func (a Access) Reason() Reason {
	return a.reason
}

// Evaluate applies the gating policy. An unpaid admission fee always
// restricts, regardless of balance; otherwise a tuition balance above the
// threshold restricts. Threshold is inclusive on the allowed side: a
// balance equal to the threshold still passes.
func Evaluate(feeBalance int64, admissionPending bool, threshold int64) Access {
	if admissionPending {
		return Restricted(ReasonAdmissionPending)
	}
	if feeBalance > threshold {
		return Restricted(ReasonFeeBalance)
	}
	return Unrestricted()
}
