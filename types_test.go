package nativebuild

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllBuilderTypesMatchBackendTable(t *testing.T) {
	all := AllBuilderTypes()
	assert.Len(t, all, len(backends))
	for _, typ := range all {
		assert.True(t, typ.Valid(), "type %q missing from backend table", typ)
	}
}

func TestParseBuilderType(t *testing.T) {
	testCases := []struct {
		input   string
		want    BuilderType
		wantErr bool
	}{
		{"ndk", NDK, false},
		{"NDK", NDK, false},
		{"cmake-gcc", CMakeGCC, false},
		{"  cmake-windows-msvc ", CMakeWindowsMSVC, false},
		{"cmake-ohos", CMakeOHOS, false},
		{"msvc", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseBuilderType(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedBuilderType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommandSpecSatisfies(t *testing.T) {
	defaultSpec := &CommandSpec{Path: "cmake"}
	assert.True(t, defaultSpec.Satisfies(0))
	assert.False(t, defaultSpec.Satisfies(1))
	assert.False(t, defaultSpec.Satisfies(-1))

	custom := &CommandSpec{Path: "cmake", ExpectedExitCodes: []int{0, 2}}
	assert.True(t, custom.Satisfies(0))
	assert.True(t, custom.Satisfies(2))
	assert.False(t, custom.Satisfies(1))
}

func TestCommandSpecString(t *testing.T) {
	spec := &CommandSpec{Path: "cmake", Args: []string{"-S", ".", "-B", "build"}}
	assert.Equal(t, "cmake -S . -B build", spec.String())

	bare := &CommandSpec{Path: "ninja"}
	assert.Equal(t, "ninja", bare.String())
}

func TestBuildConfigSourceDirDefault(t *testing.T) {
	cfg := &BuildConfig{}
	assert.Equal(t, ".", cfg.sourceDir())

	cfg.SourceDir = "src"
	assert.Equal(t, "src", cfg.sourceDir())
}
