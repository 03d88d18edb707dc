package features

import "math"

func Dot(a, b Vector) float64 {
	sum := 0.0
	for i := range Dim {
		sum += a[i] * b[i]
	}
	return sum
}

func Norm(a Vector) float64 {
	return math.Sqrt(Dot(a, a))
}

// Cosine is the cosine similarity of a and b, defined as 0 when either
// vector has zero magnitude.
func Cosine(a, b Vector) float64 {
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}
