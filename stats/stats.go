package stats

import (
	"math"
	"math/rand"
)

func Srange(size int) []int {
	sample := make([]int, 0, size)
	for i := 0; i < size; i++ {
		sample = append(sample, i)
	}
	return sample
}

// Sample draws size distinct indices from [0, populationSize) in draw order.
// It returns every index when size exceeds the population.
func Sample(size, populationSize int) (sample []int) {
	if size >= populationSize {
		return Srange(populationSize)
	}
	pop := func(items []int) ([]int, int) {
		i := rand.Intn(len(items))
		item := items[i]
		copy(items[i:], items[i+1:])
		return items[:len(items)-1], item
	}
	items := Srange(populationSize)
	sample = make([]int, 0, size)
	for i := 0; i < size; i++ {
		var item int
		items, item = pop(items)
		sample = append(sample, item)
	}
	return sample
}

// Max returns the item with the largest f, -1 for no items.
func Max(items []int, f func(item int) float64) (arg int, max float64) {
	arg = -1
	for _, i := range items {
		d := f(i)
		if d > max || arg < 0 {
			max = d
			arg = i
		}
	}
	return arg, max
}

func Sum(list []float64) float64 {
	var sum float64
	for _, item := range list {
		sum += item
	}
	return sum
}

func Mean(list []float64) float64 {
	if len(list) == 0 {
		return 0
	}
	return Sum(list) / float64(len(list))
}

func Round(val float64, places int) (newVal float64) {
	var round float64
	roundOn := .5
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	_div := math.Copysign(div, val)
	_roundOn := math.Copysign(roundOn, val)
	if _div >= _roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	return round / pow
}
