package random

// Scripted replays fixed values, cycling when exhausted. Intended for tests.
// Floats must be in [0, 1); Ints are reduced modulo n on each draw.
type Scripted struct {
	Floats []float32
	Ints   []int

	fi, ii int
}

func (s *Scripted) Float32() float32 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
