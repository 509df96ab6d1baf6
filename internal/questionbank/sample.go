// Package questionbank загружает банк вопросов и выбирает из него подмножество для интервью.
package questionbank

import (
	"fmt"
	"math/rand/v2"
)

// Sample выбирает k вопросов без повторов, равномерно.
// Порядок результата совпадает с порядком, в котором вопросы будут заданы.
func Sample(pool []Question, k int, rng *rand.Rand) ([]Question, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, k)
	}
	if len(pool) < k {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientQuestions, k, len(pool))
	}

	indices := sampleIndices(len(pool), k, rng)
	questions := make([]Question, 0, k)
	for _, idx := range indices {
		questions = append(questions, pool[idx])
	}
	return questions, nil
}

// sampleIndices частичный Fisher–Yates: первые k элементов перестановки
func sampleIndices(n, k int, rng *rand.Rand) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intN(rng, n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
