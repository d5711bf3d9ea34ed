package utils

// ToStringSlice keeps the string elements of a decoded JSON array.
func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0)
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
		}
	}
	return stringSlice
}

// StringFrom returns m[key] when it holds a string.
func StringFrom(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
