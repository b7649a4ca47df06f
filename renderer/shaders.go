package renderer

import (
	"fmt"
	"os"
	"strings"
)

// ShaderSource is GLSL text plus a name used in diagnostics.
type ShaderSource struct {
	Name string
	Code string
}

// ShaderSet holds the fragment programs of the two passes.
type ShaderSet struct {
	Accumulate ShaderSource
	Present    ShaderSource
}

// LoadShaderSource reads a GLSL file. An empty path returns fallback.
func LoadShaderSource(path string, fallback ShaderSource) (ShaderSource, error) {
	if path == "" {
		return fallback, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("read shader %q: %w", path, err)
	}

	code := string(data)
	if !strings.HasPrefix(strings.TrimSpace(code), "#version") {
		return ShaderSource{}, fmt.Errorf("shader %q: missing #version directive", path)
	}
	logger.Infof("loaded shader %s (%d bytes)", path, len(data))
	return ShaderSource{Name: path, Code: code}, nil
}

// LoadShaderSet applies the file overrides on top of defaults.
func LoadShaderSet(accumulatePath, presentPath string, defaults ShaderSet) (ShaderSet, error) {
	accumulate, err := LoadShaderSource(accumulatePath, defaults.Accumulate)
	if err != nil {
		return ShaderSet{}, err
	}
	present, err := LoadShaderSource(presentPath, defaults.Present)
	if err != nil {
		return ShaderSet{}, err
	}
	return ShaderSet{Accumulate: accumulate, Present: present}, nil
}
