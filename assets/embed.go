package assets

import (
	"embed"
	"fmt"
	"os"
)

const (
	VertexShader   = "shaders/vertex.glsl"
	FragmentShader = "shaders/fragment.glsl"
)

//go:embed shaders/*.glsl
var shadersFS embed.FS

// ShaderSource returns the text of a shader, verbatim. A non-empty override path
// is read from disk; otherwise the embedded file name is used.
func ShaderSource(name, override string) (string, error) {
	if override != "" {
		data, err := os.ReadFile(override)
		if err != nil {
			return "", fmt.Errorf("assets: read shader %s: %w", override, err)
		}
		return string(data), nil
	}

	data, err := shadersFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("assets: read embedded shader %s: %w", name, err)
	}
	return string(data), nil
}
