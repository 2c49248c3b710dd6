package models

// DependencyBinding is one recognized `name = require('module');` declaration.
type DependencyBinding struct {
	BindingName      string // Local identifier: "couponQueries"
	ModuleIdentifier string // Module as written: "../../payment/queries/coupon"
}

// UsageRecord holds the members invoked through a binding as `binding.member(`.
type UsageRecord struct {
	BindingName    string
	InvokedMembers []string
}

// StubSpec is one mock handed to the skeleton template.
type StubSpec struct {
	Module        string
	Name          string
	UsedFunctions []string
}

type SkipReason string

const (
	SkipDestructuring SkipReason = "destructuring"
	SkipExcluded      SkipReason = "excluded"
	SkipNoUsage       SkipReason = "no-usage"
	SkipDuplicate     SkipReason = "duplicate"
	SkipUnsupported   SkipReason = "unsupported"
)

// SkippedBinding records a declaration that was recognized but not turned into a stub.
type SkippedBinding struct {
	BindingName      string
	ModuleIdentifier string
	Reason           SkipReason
}

type InspectionResult struct {
	Stubs   []StubSpec
	Skipped []SkippedBinding
}

func (r *InspectionResult) IsEmpty() bool {
	return r == nil || len(r.Stubs) == 0
}

// SkippedFor returns the skip reason for a binding name, if it was skipped.
func (r *InspectionResult) SkippedFor(bindingName string) (SkipReason, bool) {
	if r == nil {
		return "", false
	}
	for _, s := range r.Skipped {
		if s.BindingName == bindingName {
			return s.Reason, true
		}
	}
	return "", false
}
