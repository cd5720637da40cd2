package valueobjects

import "fmt"

// Impact is the business effect of a fault, derived from the severity a
// store reports.
type Impact string

const (
	ImpactSalesStopped Impact = "SALES_STOPPED"
	ImpactPartial      Impact = "PARTIAL"
	ImpactInfo         Impact = "INFO"
)

var validImpacts = map[Impact]bool{
	ImpactSalesStopped: true,
	ImpactPartial:      true,
	ImpactInfo:         true,
}

func (i Impact) String() string {
	return string(i)
}

func (i Impact) IsValid() bool {
	return validImpacts[i]
}

// ImpactFromSeverity accepts either an impact name or a priority label.
// Anything unrecognized is informational.
func ImpactFromSeverity(severity string) Impact {
	switch severity {
	case string(ImpactSalesStopped), string(PriorityP1):
		return ImpactSalesStopped
	case string(ImpactPartial), string(PriorityP2):
		return ImpactPartial
	default:
		return ImpactInfo
	}
}

// Priority is the initial triage priority for a ticket of this impact.
func (i Impact) Priority() Priority {
	switch i {
	case ImpactSalesStopped:
		return PriorityP1
	case ImpactPartial:
		return PriorityP2
	default:
		return PriorityP3
	}
}

func NewImpact(s string) (Impact, error) {
	i := Impact(s)
	if !i.IsValid() {
		return "", fmt.Errorf("invalid impact: %s", s)
	}
	return i, nil
}
