package ai

import "math/rand"

// FallbackBank serves questions from a static pool when the generative
// provider is unavailable or returns an invalid payload.
type FallbackBank struct {
	pool []Question
}

// NewFallbackBank constructs the bank with the built-in question pool.
func NewFallbackBank() *FallbackBank {
	return &FallbackBank{pool: fallbackPool()}
}

// Sample returns up to count questions drawn in random order from the pool.
func (b *FallbackBank) Sample(count int) []Question {
	if count <= 0 || count > len(b.pool) {
		count = len(b.pool)
	}

	indexes := rand.Perm(len(b.pool))
	questions := make([]Question, 0, count)
	for _, idx := range indexes[:count] {
		questions = append(questions, b.pool[idx])
	}
	return questions
}

func fallbackPool() []Question {
	return []Question{
		{ID: 1, Question: "What does CPU stand for?", Options: []string{"Central Process Unit", "Central Processing Unit", "Computer Personal Unit", "Central Processor Unit"}, Answer: "Central Processing Unit"},
		{ID: 2, Question: "Which data structure uses LIFO?", Options: []string{"Queue", "Array", "Stack", "Tree"}, Answer: "Stack"},
		{ID: 3, Question: "Time complexity of binary search?", Options: []string{"O(n)", "O(log n)", "O(1)", "O(n^2)"}, Answer: "O(log n)"},
		{ID: 4, Question: "HTTP Error 404 means?", Options: []string{"Server Error", "Forbidden", "Not Found", "Bad Request"}, Answer: "Not Found"},
		{ID: 5, Question: "Which language is used for Android native dev?", Options: []string{"Swift", "Kotlin", "PHP", "Ruby"}, Answer: "Kotlin"},
		{ID: 6, Question: "Base 16 number system is called?", Options: []string{"Binary", "Octal", "Decimal", "Hexadecimal"}, Answer: "Hexadecimal"},
		{ID: 7, Question: "Who is known as the father of Computer Science?", Options: []string{"Alan Turing", "Charles Babbage", "Bill Gates", "Steve Jobs"}, Answer: "Alan Turing"},
		{ID: 8, Question: "Which sort is O(n^2) worst case?", Options: []string{"Merge Sort", "Heap Sort", "Bubble Sort", "Quick Sort"}, Answer: "Bubble Sort"},
		{ID: 9, Question: "What is Docker used for?", Options: []string{"Video Editing", "Containerization", "Word Processing", "Database Mgmt"}, Answer: "Containerization"},
		{ID: 10, Question: "Default port for HTTP?", Options: []string{"21", "80", "443", "8080"}, Answer: "80"},
		{ID: 11, Question: "Which SQL command retrieves data?", Options: []string{"UPDATE", "DELETE", "SELECT", "INSERT"}, Answer: "SELECT"},
		{ID: 12, Question: "React is a library for?", Options: []string{"Backend", "Machine Learning", "User Interfaces", "Database"}, Answer: "User Interfaces"},
		{ID: 13, Question: "IPv4 addresses are how many bits?", Options: []string{"32", "64", "128", "16"}, Answer: "32"},
		{ID: 14, Question: "Which protocol is connection-oriented?", Options: []string{"UDP", "IP", "TCP", "ICMP"}, Answer: "TCP"},
		{ID: 15, Question: "In GIT, what command uploads changes?", Options: []string{"pull", "commit", "push", "checkout"}, Answer: "push"},
	}
}
