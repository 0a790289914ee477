// Package drawing defines the vector path instructions used by ASS drawing
// mode (\p) and vector clips (\clip with drawing data).
package drawing
