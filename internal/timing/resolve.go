package timing

import "assparse/internal/parts"

// Resolve returns a copy of ps in which unset times span the whole line:
// Move and Transform without times run from 0 to duration, and a Transform
// without an acceleration gets 1. Tags nested in a Transform are left as is.
func Resolve(ps []parts.Part, duration float64) []parts.Part {
	out := make([]parts.Part, len(ps))
	for i, p := range ps {
		switch v := p.(type) {
		case parts.Move:
			if v.T1 == nil || v.T2 == nil {
				v.T1, v.T2 = float64Ptr(0), float64Ptr(duration)
			}
			out[i] = v
		case parts.Transform:
			if v.Start == nil {
				v.Start = float64Ptr(0)
			}
			if v.End == nil {
				v.End = float64Ptr(duration)
			}
			if v.Accel == nil {
				v.Accel = float64Ptr(1)
			}
			out[i] = v
		default:
			out[i] = p
		}
	}
	return out
}

func float64Ptr(v float64) *float64 {
	return &v
}
