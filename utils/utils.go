package utils

// ContainsString returns true iff the provided string slice hay contains string
// needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

// ClampToZero floors a counter at zero. Like counts can transiently drift
// below zero when a rollback races a fresh server snapshot.
func ClampToZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
