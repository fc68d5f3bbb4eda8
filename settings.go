package nativebuild

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the tunable backend parameters: generator preference,
// minimum tool versions and cross-compilation defaults. The zero-config
// path is DefaultSettings; LoadSettings overlays a TOML file on top of it
// so deployments can pin different generators or target ABIs without code
// changes.
type Settings struct {
	// MinCMakeVersion is the lowest accepted `cmake --version`.
	MinCMakeVersion string `toml:"min_cmake_version"`

	// Generators is the preference order for single-config backends.
	// The first generator whose driver executable resolves wins;
	// "Unix Makefiles" is accepted unconditionally as the terminal
	// fallback.
	Generators []string `toml:"generators"`

	// MSVCGenerator is the Visual Studio generator name.
	MSVCGenerator string `toml:"msvc_generator"`

	// BuildType is passed as CMAKE_BUILD_TYPE / --config.
	BuildType string `toml:"build_type"`

	Android CrossSettings `toml:"android"`
	OHOS    CrossSettings `toml:"ohos"`
}

// CrossSettings hold the toolchain-file defines for one cross target.
// OHOS reuses the ANDROID_* define keys; only the platform value differs.
type CrossSettings struct {
	ABI      string `toml:"abi"`
	STL      string `toml:"stl"`
	Platform string `toml:"platform"`
}

// DefaultSettings returns the built-in backend parameters.
func DefaultSettings() *Settings {
	return &Settings{
		MinCMakeVersion: "3.13",
		Generators:      []string{"Ninja", "Unix Makefiles"},
		MSVCGenerator:   "Visual Studio 17 2022",
		BuildType:       "Release",
		Android: CrossSettings{
			ABI:      "arm64-v8a",
			STL:      "c++_shared",
			Platform: "android-31",
		},
		OHOS: CrossSettings{
			ABI:      "arm64-v8a",
			STL:      "c++_shared",
			Platform: "OHOS",
		},
	}
}

// LoadSettings reads a TOML settings file and overlays it on the defaults.
// Fields absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings, nil
}

func (s *Settings) cross(target string) CrossSettings {
	if target == crossTargetOHOS {
		return s.OHOS
	}
	return s.Android
}
