// Package stat provides basic descriptive statistics over in-memory slices.
//
// Every function requires a non-empty slice and reports ErrEmptyInput
// otherwise. Inputs are never modified or retained.
package stat

import (
	"errors"
	"math"
	"slices"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ErrEmptyInput is returned by every function in this package when called
// with an empty slice.
var ErrEmptyInput = errors.New("stat: input must contain at least one value")

// Average returns the arithmetic mean of numbers.
func Average[T Number](numbers []T) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}

	var sum float64

	for _, n := range numbers {
		sum += float64(n)
	}

	return sum / float64(len(numbers)), nil
}

// Variance returns the population variance of numbers: the sum of squared
// differences between each value and the mean, divided by the number of
// values. This is not the sample variance, which divides by n-1.
//
// For example Variance([]int{1, 5}) is ((1-3)^2 + (5-3)^2) / 2 = 4.
func Variance[T Number](numbers []T) (float64, error) {
	n := len(numbers)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	avg, err := Average(numbers)
	if err != nil {
		return 0, err
	}

	var sum float64

	for _, v := range numbers {
		d := float64(v) - avg
		sum += d * d
	}

	return sum / float64(n), nil
}

// Stdev returns the standard deviation of numbers, the square root of their
// population variance.
func Stdev[T Number](numbers []T) (float64, error) {
	v, err := Variance(numbers)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Median returns the middle value of numbers, or the mean of the two middle
// values when the count is even. The input is left in its original order.
func Median[T Number](numbers []T) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	l := len(sorted)

	if l%2 == 0 {
		return (float64(sorted[l/2-1]) + float64(sorted[l/2])) / 2, nil
	}

	return float64(sorted[(l-1)/2]), nil
}

// Maximum returns the largest value of numbers, or ErrEmptyInput when numbers
// is empty.
func Maximum[T Number](numbers []T) (T, error) {
	if len(numbers) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	max := numbers[0]

	for _, n := range numbers[1:] {
		if n > max {
			max = n
		}
	}

	return max, nil
}
