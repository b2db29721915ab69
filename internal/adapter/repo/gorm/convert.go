package gormrepo

import (
	"errors"
	"fmt"
	"math"
)

var ErrOutOfRange = errors.New("value does not fit an integer column")

func toInt32(field string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s=%d: %w", field, v, ErrOutOfRange)
	}
	return int32(v), nil
}

// toInt32s converts the named values in order, stopping at the first overflow.
func toInt32s(fields []string, values ...int) ([]int32, error) {
	out := make([]int32, len(values))
	for i, v := range values {
		n, err := toInt32(fields[i], v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
