package utils

import "strings"

const WordsPerMinute = 200

// WordCount counts the whitespace-separated tokens of body.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// ReadTime estimates reading minutes for body, never less than one.
func ReadTime(body string) int {
	minutes := (WordCount(body) + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
