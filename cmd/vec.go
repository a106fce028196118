package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// parseVec3 parses a vector given as "x,y,z"
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z but got %q", value)
	}

	var xyz [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid component %q in %q", part, value)
		}
		xyz[i] = f
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}
