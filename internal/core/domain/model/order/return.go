package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ntanloi/DHKTPM18C-Nhom08-WebsiteBanMyPhamTrucTuyen-sub002/internal/pkg/errs"
)

var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

// ReturnStatus represents the state of a return request. A return has its own
// status, decoupled from the payment: approval is a policy decision, refunding
// is the irreversible financial action that follows it.
type ReturnStatus int

const (
	ReturnUnknown ReturnStatus = iota
	ReturnPending
	ReturnApproved
	ReturnRejected
	ReturnRefunded
)

func getReturnStatusStrings() map[ReturnStatus]string {
	return map[ReturnStatus]string{
		ReturnUnknown:  "Unknown",
		ReturnPending:  "PENDING",
		ReturnApproved: "APPROVED",
		ReturnRejected: "REJECTED",
		ReturnRefunded: "REFUNDED",
	}
}

// Validate checks that the value is one of the four defined return states.
func (s ReturnStatus) Validate() error {
	if s == ReturnUnknown {
		return errs.NewValueIsInvalidErrorWithCause("returnStatus",
			fmt.Errorf("%d is not a valid return status", s))
	}
	if _, ok := getReturnStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("returnStatus",
			fmt.Errorf("%d is not a valid return status", s))
	}
	return nil
}

func (s ReturnStatus) String() string {
	if str, ok := getReturnStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Return is the return-request sub-entity owned by an Order. Only a delivered
// order may acquire one, and at most one per order. Rejected returns stay
// attached for the audit trail but are permanently refund-ineligible.
type Return struct {
	status          ReturnStatus
	reason          string
	resolutionNotes string
	createdAt       time.Time
	updatedAt       time.Time

	isConstructed bool
}

// NewReturn creates a pending return request with the customer's reason.
func NewReturn(reason string, at time.Time) (*Return, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Return{
		status:        ReturnPending,
		reason:        reason,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}, nil
}

// RestoreReturn rehydrates a return from persistence. Repository use only.
func RestoreReturn(
	status ReturnStatus,
	reason, resolutionNotes string,
	createdAt, updatedAt time.Time,
) (*Return, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Return{
		status:          status,
		reason:          reason,
		resolutionNotes: resolutionNotes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Return was created through a constructor.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

func (r *Return) Status() ReturnStatus {
	return r.status
}

func (r *Return) Reason() string {
	return r.reason
}

func (r *Return) ResolutionNotes() string {
	return r.resolutionNotes
}

func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Return) UpdatedAt() time.Time {
	return r.updatedAt
}

// Approve authorizes the subsequent refund step. It moves no money.
func (r *Return) Approve(notes string, at time.Time) error {
	if r.status != ReturnPending {
		return errs.NewPreconditionError(
			fmt.Sprintf("return in status %s cannot be approved", r.status))
	}
	r.status = ReturnApproved
	r.resolutionNotes = notes
	r.updatedAt = at
	return nil
}

// Reject declines the return request with a reason. Allowed while the return
// is pending or approved-but-not-refunded.
func (r *Return) Reject(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if r.status == ReturnRefunded {
		return errs.NewPreconditionError("return is already refunded")
	}
	if r.status == ReturnRejected {
		return errs.NewAlreadyAppliedError("reject return")
	}
	r.status = ReturnRejected
	r.resolutionNotes = reason
	r.updatedAt = at
	return nil
}

// MarkRefunded completes the return once the payment has been refunded.
// Only an approved return may reach Refunded.
func (r *Return) MarkRefunded(at time.Time) error {
	if r.status != ReturnApproved {
		return errs.NewPreconditionError(
			fmt.Sprintf("return in status %s cannot be refunded", r.status))
	}
	r.status = ReturnRefunded
	r.updatedAt = at
	return nil
}
