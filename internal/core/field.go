package core

// NewUniformField allocates a field of n nodes all set to value.
func NewUniformField(n int, value float64) []float64 {
	if n < 0 {
		n = 0
	}
	field := make([]float64, n)
	for i := range field {
		field[i] = value
	}
	return field
}

// FieldStats summarises a field.
type FieldStats struct {
	Min, Max, Mean float64
}

// Stats computes min, max and mean of field. An empty field yields zeros.
func Stats(field []float64) FieldStats {
	if len(field) == 0 {
		return FieldStats{}
	}
	s := FieldStats{Min: field[0], Max: field[0]}
	sum := 0.0
	for _, v := range field {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(field))
	return s
}
