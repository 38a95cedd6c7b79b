package aiq

import "math"

// ComputeCapabilities converts positional answers into a capability vector.
//
// answers[i] belongs to the i-th question. Values outside [1,4], and questions
// past the end of answers, are skipped: they add neither score nor weight. A
// dimension no answered question touches scores 0.
//
// Each valid answer a normalises to (a-1)/3*100 and contributes score*weight to
// every dimension the question affects; the dimension's final value is the
// weighted mean rounded half up.
func ComputeCapabilities(answers []int, q *Questionnaire) Capabilities {
	var sums, weights [dimensionCount]float64

	for i, question := range q.questions {
		if i >= len(answers) {
			break
		}
		a := answers[i]
		if a < MinAnswer || a > MaxAnswer {
			continue
		}
		score := float64(a-MinAnswer) / float64(MaxAnswer-MinAnswer) * 100
		for _, d := range question.Affects {
			idx := d.index()
			if idx < 0 {
				continue
			}
			sums[idx] += score * question.Weight
			weights[idx] += question.Weight
		}
	}

	var c Capabilities
	for idx, d := range dimensionOrder {
		if weights[idx] > 0 {
			c.set(d, int(roundHalfUp(sums[idx]/weights[idx])))
		}
	}
	return c
}

// maxStdDev is the reference ceiling for the standard deviation of answers on
// the 1-4 scale; a perfectly alternating 1/4 sequence reaches it.
const maxStdDev = 1.5

// ComputeConfidence maps the population standard deviation of answers to a
// consistency score in [0,1], rounded to two decimals. Values are taken as
// given; range checking is the caller's concern. Empty input yields 0.
func ComputeConfidence(answers []int) float64 {
	if len(answers) == 0 {
		return 0
	}
	n := float64(len(answers))

	var sum float64
	for _, a := range answers {
		sum += float64(a)
	}
	mean := sum / n

	var sq float64
	for _, a := range answers {
		d := float64(a) - mean
		sq += d * d
	}
	stdDev := math.Sqrt(sq / n)

	confidence := clamp(1-stdDev/maxStdDev, 0, 1)
	return roundHalfUp(confidence*100) / 100
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
