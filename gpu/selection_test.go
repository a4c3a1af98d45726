package gpu

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAll(t *testing.T) {
	available := []string{"VK_KHR_surface", "VK_KHR_swapchain"}

	assert.True(t, HasAll(nil, available))
	assert.True(t, HasAll([]string{"VK_KHR_swapchain"}, available))
	assert.False(t, HasAll([]string{"VK_KHR_swapchain", "VK_EXT_debug_utils"}, available))
	assert.False(t, HasAll([]string{"vk_khr_swapchain"}, available))
	assert.Equal(t, []string{"b", "d"}, Missing([]string{"a", "b", "c", "d"}, []string{"c", "a"}))
}

func TestHasAllIgnoresOrderAndDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		available []string
		want      bool
	}{
		{"reversed", []string{"b", "a"}, []string{"a", "b"}, true},
		{"duplicate request", []string{"a", "a"}, []string{"a"}, true},
		{"duplicate available", []string{"a"}, []string{"b", "a", "a"}, true},
		{"duplicates both sides", []string{"b", "a", "b"}, []string{"a", "a", "b"}, true},
		{"duplicate missing", []string{"x", "x"}, []string{"a"}, false},
		{"nothing available", []string{"a"}, nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, HasAll(test.requested, test.available))
			// reversing either list never changes the answer
			assert.Equal(t, test.want, HasAll(reversed(test.requested), test.available))
			assert.Equal(t, test.want, HasAll(test.requested, reversed(test.available)))
		})
	}

	assert.Equal(t, []string{"x", "x"}, Missing([]string{"x", "x"}, nil))
	assert.Empty(t, Missing([]string{"a", "a"}, []string{"a", "a"}))
}

func reversed(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[len(names)-1-i] = name
	}
	return out
}

func queueFamilies(flags []QueueFlags, present []bool) []QueueFamily {
	var families []QueueFamily
	for i := range flags {
		families = append(families, QueueFamily{
			Index:            i,
			Properties:       QueueFamilyProperties{QueueFlags: flags[i], QueueCount: 1},
			PresentSupported: present[i],
		})
	}
	return families
}

func TestFindQueueFamiliesSeparateFamilies(t *testing.T) {
	indices := FindQueueFamilies(queueFamilies(
		[]QueueFlags{QueueTransfer, QueueGraphics},
		[]bool{true, false},
	))
	require.True(t, indices.IsComplete())
	assert.Equal(t, 1, *indices.GraphicsFamily)
	assert.Equal(t, 0, *indices.PresentFamily)
	assert.Equal(t, []int{1, 0}, indices.Unique())

	mode, shared := ChooseSharingMode(indices)
	assert.Equal(t, SharingModeConcurrent, mode)
	assert.Equal(t, []int{1, 0}, shared)
}

func TestFindQueueFamiliesPicksFirstMatch(t *testing.T) {
	indices := FindQueueFamilies(queueFamilies(
		[]QueueFlags{QueueCompute, QueueGraphics, QueueGraphics | QueueCompute},
		[]bool{false, true, true},
	))
	require.True(t, indices.IsComplete())
	assert.Equal(t, 1, *indices.GraphicsFamily)
	assert.Equal(t, 1, *indices.PresentFamily)
	assert.Equal(t, []int{1}, indices.Unique())

	mode, shared := ChooseSharingMode(indices)
	assert.Equal(t, SharingModeExclusive, mode)
	assert.Empty(t, shared)
}

func TestFindQueueFamiliesIncomplete(t *testing.T) {
	indices := FindQueueFamilies(queueFamilies(
		[]QueueFlags{QueueCompute, QueueTransfer},
		[]bool{true, true},
	))
	assert.False(t, indices.IsComplete())
	assert.Nil(t, indices.GraphicsFamily)
	require.NotNil(t, indices.PresentFamily)
	assert.Equal(t, 0, *indices.PresentFamily)

	assert.False(t, FindQueueFamilies(nil).IsComplete())
}

func TestIsDeviceSuitable(t *testing.T) {
	caps := DeviceCapabilities{
		Extensions:    []string{SwapchainExtensionName},
		QueueFamilies: queueFamilies([]QueueFlags{QueueGraphics}, []bool{true}),
	}
	surface := &SurfaceSupport{
		Formats:      []SurfaceFormat{PreferredSurfaceFormat},
		PresentModes: []PresentMode{PresentModeFIFO},
	}
	required := []string{SwapchainExtensionName}

	suitable, reason := IsDeviceSuitable(caps, surface, required)
	assert.True(t, suitable)
	assert.Empty(t, reason)

	suitable, reason = IsDeviceSuitable(caps, &SurfaceSupport{PresentModes: surface.PresentModes}, required)
	assert.False(t, suitable)
	assert.Contains(t, reason, "no surface formats")

	suitable, reason = IsDeviceSuitable(caps, &SurfaceSupport{Formats: surface.Formats}, required)
	assert.False(t, suitable)
	assert.Contains(t, reason, "no present modes")

	noSwapchain := caps
	noSwapchain.Extensions = nil
	suitable, reason = IsDeviceSuitable(noSwapchain, nil, required)
	assert.False(t, suitable)
	assert.Contains(t, reason, SwapchainExtensionName)

	computeOnly := caps
	computeOnly.QueueFamilies = queueFamilies([]QueueFlags{QueueCompute}, []bool{true})
	suitable, reason = IsDeviceSuitable(computeOnly, surface, required)
	assert.False(t, suitable)
	assert.Contains(t, reason, "queue families")
}

func TestChooseSurfaceFormat(t *testing.T) {
	unorm := SurfaceFormat{Format: FormatB8G8R8A8UnsignedNormalized, ColorSpace: ColorSpaceSRGBNonlinear}

	assert.Equal(t, PreferredSurfaceFormat, ChooseSurfaceFormat([]SurfaceFormat{unorm, PreferredSurfaceFormat}))
	assert.Equal(t, unorm, ChooseSurfaceFormat([]SurfaceFormat{unorm}))

	// The format alone is not enough, the color space has to match as well
	wrongSpace := SurfaceFormat{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpace(1000104001)}
	assert.Equal(t, wrongSpace, ChooseSurfaceFormat([]SurfaceFormat{wrongSpace, unorm}))
}

func TestChoosePresentMode(t *testing.T) {
	assert.Equal(t, PresentModeMailbox, ChoosePresentMode([]PresentMode{PresentModeFIFO, PresentModeMailbox}))
	assert.Equal(t, PresentModeFIFO, ChoosePresentMode([]PresentMode{PresentModeImmediate, PresentModeFIFO}))
	assert.Equal(t, PresentModeFIFO, ChoosePresentMode([]PresentMode{PresentModeImmediate}))
	assert.Equal(t, PresentModeFIFO, ChoosePresentMode(nil))
}

func undefinedExtentCapabilities() SurfaceCapabilities {
	return SurfaceCapabilities{
		CurrentExtent:  Extent2D{Width: math.MaxUint32, Height: math.MaxUint32},
		MinImageExtent: Extent2D{Width: 400, Height: 300},
		MaxImageExtent: Extent2D{Width: 1920, Height: 1080},
	}
}

func TestChooseExtentUsesCurrentExtent(t *testing.T) {
	caps := SurfaceCapabilities{
		CurrentExtent:  Extent2D{Width: 1024, Height: 768},
		MinImageExtent: Extent2D{Width: 2000, Height: 2000},
		MaxImageExtent: Extent2D{Width: 100, Height: 100},
	}

	extent, err := ChooseExtent(caps, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 1024, Height: 768}, extent)
}

func TestChooseExtentScalesAndClamps(t *testing.T) {
	caps := undefinedExtentCapabilities()
	require.True(t, IsUndefinedExtent(caps.CurrentExtent))

	extent, err := ChooseExtent(caps, 1600, 1200, 2.0)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 800, Height: 600}, extent)

	extent, err = ChooseExtent(caps, 5000, 100, 1.0)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 1920, Height: 300}, extent)

	extent, err = ChooseExtent(caps, 1000, 700, 1.5)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 666, Height: 466}, extent)
}

func TestChooseExtentRejectsBadInput(t *testing.T) {
	caps := undefinedExtentCapabilities()

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ChooseExtent(caps, 800, 600, scale)
		assert.True(t, errors.Is(err, ErrContractViolation), "scale %v", scale)
	}

	inverted := caps
	inverted.MinImageExtent.Width = 1920
	inverted.MaxImageExtent.Width = 400
	_, err := ChooseExtent(inverted, 800, 600, 1)
	assert.True(t, errors.Is(err, ErrContractViolation))

	equal := caps
	equal.MinImageExtent.Height = 1080
	_, err = ChooseExtent(equal, 800, 600, 1)
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestClamp(t *testing.T) {
	val, err := clamp(5, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, val)

	val, err = clamp(-3, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, val)

	val, err = clamp(11, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, val)

	_, err = clamp(5, 10, 10)
	assert.True(t, errors.Is(err, ErrContractViolation))
}

func TestChooseImageCount(t *testing.T) {
	assert.Equal(t, 3, ChooseImageCount(SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8}))
	assert.Equal(t, 3, ChooseImageCount(SurfaceCapabilities{MinImageCount: 3, MaxImageCount: 3}))
	assert.Equal(t, 5, ChooseImageCount(SurfaceCapabilities{MinImageCount: 4, MaxImageCount: 0}))
}
