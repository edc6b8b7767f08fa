package ai

import "math"

const (
	baseScore    = 1000.0
	fullRowBonus = 65.0
	holePenalty  = 20.0
	jaggedLimit  = 3
	jaggedWeight = 5.0
	edgeExponent = 1.6
	midExponent  = 1.7
)

// Score rates an occupancy grid; higher is better. It is a pure function of grid.
func Score(grid [][]bool) float64 {
	if len(grid) == 0 {
		return baseScore
	}
	return score(grid, make([]int, len(grid[0])))
}

// score uses high as scratch space for per-column surface heights.
func score(grid [][]bool, high []int) float64 {
	height := len(grid)
	if height == 0 {
		return baseScore
	}
	width := len(grid[0])
	for x := range high[:width] {
		high[x] = -1
	}

	s := baseScore
	for y := 0; y < height; y++ {
		full := true
		for x := 0; x < width; x++ {
			if !grid[y][x] {
				full = false
				if high[x] >= 0 {
					s -= holePenalty + float64(height-y)*2
				}
			} else if high[x] < 0 {
				high[x] = y
			}
		}
		if full {
			s += fullRowBonus
		}
	}

	for x := 0; x < width; x++ {
		if high[x] < 0 {
			high[x] = height
		}
		stack := float64(height - high[x])
		if x == 0 || x == width-1 {
			s -= math.Pow(stack, edgeExponent)
		} else {
			s -= math.Pow(stack, midExponent)
		}
		if x > 0 {
			diff := high[x] - high[x-1]
			if diff < 0 {
				diff = -diff
			}
			if diff > jaggedLimit {
				s -= float64(diff) * jaggedWeight
			}
		}
	}
	return s
}
