package model

// ScalingGrade converts a scaling coefficient (1.0 = 100%) to the in-game letter.
func ScalingGrade(scaling float64) string {
	switch {
	case scaling > 1.75:
		return "S"
	case scaling >= 1.4:
		return "A"
	case scaling >= 0.9:
		return "B"
	case scaling >= 0.6:
		return "C"
	case scaling >= 0.25:
		return "D"
	case scaling > 0:
		return "E"
	default:
		return "-"
	}
}
