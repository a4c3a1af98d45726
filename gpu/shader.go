package gpu

import (
	"github.com/cockroachdb/errors"
)

const spirvMagic uint32 = 0x07230203

// BytesToBytecode reinterprets a little-endian SPIR-V blob as 32-bit words.
// The blob is otherwise passed through unmodified.
func BytesToBytecode(b []byte) ([]uint32, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, contractViolationf("shader blob length %d is not a positive multiple of 4", len(b))
	}

	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	if byteCode[0] != spirvMagic {
		return nil, contractViolationf("shader blob starts with %#08x, not the SPIR-V magic number", byteCode[0])
	}

	return byteCode, nil
}

func loadShaderModule(device Device, source ShaderSource, name string) (ShaderModule, error) {
	blob, err := source.Find(name)
	if err != nil {
		return nil, creationFailure(errors.Wrapf(err, "read %s", name), "shader module")
	}

	code, err := BytesToBytecode(blob)
	if err != nil {
		return nil, errors.Wrapf(err, "shader %s", name)
	}

	module, err := device.CreateShaderModule(code)
	if err != nil {
		return nil, creationFailure(err, "shader module "+name)
	}
	return module, nil
}
