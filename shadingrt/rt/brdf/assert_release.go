//go:build !shadingdebug

package brdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/directlight/shadingrt/rt/core"
)

// Inlined away outside shadingdebug builds.
func assertInputs(viewDir, normal, lightDir mgl32.Vec3, m core.Material) {}
