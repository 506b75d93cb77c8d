package utils

import "time"

// IndexOf returns the position of item in slice, or -1.
func IndexOf[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Countdown returns a function reporting the milliseconds left until limit has
// elapsed from now. The value goes negative once the limit has passed.
func Countdown(limit time.Duration) func() float64 {
	deadline := time.Now().Add(limit)
	return func() float64 {
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}
}
