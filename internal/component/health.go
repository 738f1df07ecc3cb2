package component

// MaxHealth is the health every character starts with and the upper bound of
// a valid health value.
const MaxHealth = 100

type Health struct {
	Current, Max int
}

// FullHealth returns a Health at MaxHealth.
func FullHealth() Health {
	return Health{Current: MaxHealth, Max: MaxHealth}
}

// IsValidHealth reports whether v lies in (0, MaxHealth].
func IsValidHealth(v int) bool {
	return v > 0 && v <= MaxHealth
}
