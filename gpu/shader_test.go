package gpu

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToBytecode(t *testing.T) {
	code, err := BytesToBytecode(spirvBlob)
	require.NoError(t, err)
	assert.Equal(t, []uint32{spirvMagic, 0x00010000}, code)
}

func TestBytesToBytecodeRejectsMalformedBlobs(t *testing.T) {
	_, err := BytesToBytecode(nil)
	assert.True(t, errors.Is(err, ErrContractViolation))

	_, err = BytesToBytecode(spirvBlob[:6])
	assert.True(t, errors.Is(err, ErrContractViolation))

	_, err = BytesToBytecode([]byte{0x07, 0x23, 0x02, 0x03})
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestLoadShaderModule(t *testing.T) {
	log := &callLog{}
	device := &fakeDevice{
		fakeObject: &fakeObject{log: log, name: "logical device"},
		physical:   &fakePhysicalDevice{log: log},
	}

	module, err := loadShaderModule(device, fakeShaders(), "vert.spv")
	require.NoError(t, err)
	require.NotNil(t, module)
	assert.Equal(t, [][]uint32{{spirvMagic, 0x00010000}}, device.shaderCode)

	_, err = loadShaderModule(device, fakeShaders(), "geom.spv")
	assert.True(t, errors.Is(err, ErrCreationFailure))
	assert.Contains(t, err.Error(), "geom.spv")

	broken := ShaderSourceFunc(func(string) ([]byte, error) { return []byte{1, 2, 3}, nil })
	_, err = loadShaderModule(device, broken, "vert.spv")
	assert.True(t, errors.Is(err, ErrContractViolation))

	device.physical.failOn = map[string]error{"shader module": errDriver}
	_, err = loadShaderModule(device, fakeShaders(), "frag.spv")
	assert.True(t, errors.Is(err, ErrCreationFailure))
	assert.True(t, errors.Is(err, errDriver))
}
