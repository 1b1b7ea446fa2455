package inference

// RiskTier buckets the impairment probability for human-facing output.
func RiskTier(p float64) string {
	switch {
	case p < 0.2:
		return "Very Low"
	case p < 0.4:
		return "Low"
	case p < 0.6:
		return "Medium"
	case p < 0.8:
		return "High"
	default:
		return "Very High"
	}
}
