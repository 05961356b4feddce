package trajectory

// MaxGhosts is roughly how many object copies are drawn along a trail.
const MaxGhosts = 10

// Ghost is a faded copy of the object drawn at trail sample Index.
type Ghost struct {
	Index int
	// Age runs from 0 at the oldest sample toward 1 at the newest.
	Age float32
	// SizeFactor scales the object size; older ghosts are drawn larger.
	SizeFactor float32
	// Alpha fades older ghosts out.
	Alpha float32
}

// Ghosts picks evenly spaced samples out of a trail of n samples, skipping the first
// and last. Strobe keeps every other pick so the copies read as separate flashes.
func Ghosts(n int, strobe bool) []Ghost {
	if n < 3 {
		return nil
	}
	step := max(1, n/MaxGhosts)
	out := make([]Ghost, 0, MaxGhosts+1)
	for i := step; i < n-1; i += step {
		if strobe && i%(2*step) != 0 {
			continue
		}
		age := float32(i) / float32(n)
		out = append(out, Ghost{
			Index:      i,
			Age:        age,
			SizeFactor: 0.6 * (0.5 + 0.5*(1-age)),
			Alpha:      0.5 + 0.5*age,
		})
	}
	return out
}
