package domain

type CancellationPolicy string

const (
	PolicyFlexible CancellationPolicy = "flexible"
	PolicyModerate CancellationPolicy = "moderate"
	PolicyStrict   CancellationPolicy = "strict"
)

// RefundPercent maps the number of whole days left before check-in to a
// refund percentage of the total price. Unknown tiers fall back to moderate.
func (p CancellationPolicy) RefundPercent(daysBeforeCheckIn int) int {
	switch p {
	case PolicyFlexible:
		if daysBeforeCheckIn >= 1 {
			return 100
		}
		return 0
	case PolicyStrict:
		if daysBeforeCheckIn >= 7 {
			return 50
		}
		return 0
	default:
		if daysBeforeCheckIn >= 7 {
			return 100
		}
		if daysBeforeCheckIn >= 2 {
			return 50
		}
		return 0
	}
}

func (p CancellationPolicy) Valid() bool {
	switch p {
	case PolicyFlexible, PolicyModerate, PolicyStrict:
		return true
	}
	return false
}
