package gpu

import (
	"fmt"
	"math"
	"strings"
)

var PreferredSurfaceFormat = SurfaceFormat{
	Format:     FormatB8G8R8A8SRGB,
	ColorSpace: ColorSpaceSRGBNonlinear,
}

const PreferredPresentMode = PresentModeMailbox

// HasAll reports whether every requested name appears verbatim in available.
func HasAll(requested, available []string) bool {
	return len(Missing(requested, available)) == 0
}

// Missing lists the requested names that are absent from available, in
// request order.
func Missing(requested, available []string) []string {
	availableSet := make(map[string]struct{}, len(available))
	for _, name := range available {
		availableSet[name] = struct{}{}
	}

	var missing []string
	for _, name := range requested {
		if _, ok := availableSet[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// Unique lists the graphics family followed by the present family when it
// differs. Only meaningful once the indices are complete.
func (i QueueFamilyIndices) Unique() []int {
	unique := []int{*i.GraphicsFamily}
	if *i.PresentFamily != *i.GraphicsFamily {
		unique = append(unique, *i.PresentFamily)
	}
	return unique
}

// FindQueueFamilies picks the first graphics-capable family and the first
// family that can present. The two scans are independent and may land on
// the same index.
func FindQueueFamilies(families []QueueFamily) QueueFamilyIndices {
	indices := QueueFamilyIndices{}

	for _, family := range families {
		if indices.GraphicsFamily == nil && (family.Properties.QueueFlags&QueueGraphics) != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = family.Index
		}

		if indices.PresentFamily == nil && family.PresentSupported {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = family.Index
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices
}

// IsDeviceSuitable applies the device requirements to probed data. surface
// is nil when it was not probed because required extensions were missing.
// When the device is rejected, the returned string says why.
func IsDeviceSuitable(caps DeviceCapabilities, surface *SurfaceSupport, requiredExtensions []string) (bool, string) {
	var reasons []string

	if !FindQueueFamilies(caps.QueueFamilies).IsComplete() {
		reasons = append(reasons, "no graphics and present queue families")
	}

	missing := Missing(requiredExtensions, caps.Extensions)
	if len(missing) > 0 {
		reasons = append(reasons, fmt.Sprintf("missing device extensions %v", missing))
	} else if surface == nil {
		reasons = append(reasons, "surface support not probed")
	} else {
		if len(surface.Formats) == 0 {
			reasons = append(reasons, "no surface formats")
		}
		if len(surface.PresentModes) == 0 {
			reasons = append(reasons, "no present modes")
		}
	}

	if len(reasons) > 0 {
		return false, strings.Join(reasons, "; ")
	}
	return true, ""
}

// ChooseSurfaceFormat returns the preferred format if offered, otherwise the
// first one. availableFormats must not be empty.
func ChooseSurfaceFormat(availableFormats []SurfaceFormat) SurfaceFormat {
	for _, format := range availableFormats {
		if format == PreferredSurfaceFormat {
			return format
		}
	}

	return availableFormats[0]
}

// ChoosePresentMode prefers mailbox and falls back to FIFO, which every
// driver must support.
func ChoosePresentMode(availablePresentModes []PresentMode) PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == PreferredPresentMode {
			return presentMode
		}
	}

	return PresentModeFIFO
}

// IsUndefinedExtent reports whether the surface leaves the extent up to the
// swapchain, signalled by a width of 0xFFFFFFFF.
func IsUndefinedExtent(extent Extent2D) bool {
	return uint32(extent.Width) == math.MaxUint32
}

// ChooseExtent uses the surface's current extent when it is defined.
// Otherwise the window's physical size is divided by its scale factor and
// each dimension is clamped into the supported range.
func ChooseExtent(capabilities SurfaceCapabilities, physicalWidth, physicalHeight int, scaleFactor float64) (Extent2D, error) {
	if !IsUndefinedExtent(capabilities.CurrentExtent) {
		return capabilities.CurrentExtent, nil
	}

	if scaleFactor <= 0 || math.IsNaN(scaleFactor) || math.IsInf(scaleFactor, 0) {
		return Extent2D{}, contractViolationf("scale factor %v is not a positive number", scaleFactor)
	}

	width, err := clamp(int(float64(physicalWidth)/scaleFactor), capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width)
	if err != nil {
		return Extent2D{}, err
	}

	height, err := clamp(int(float64(physicalHeight)/scaleFactor), capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height)
	if err != nil {
		return Extent2D{}, err
	}

	return Extent2D{Width: width, Height: height}, nil
}

func clamp(val, min, max int) (int, error) {
	if min >= max {
		return 0, contractViolationf("clamp bounds [%d, %d] are not ordered", min, max)
	}

	if val < min {
		return min, nil
	}
	if val > max {
		return max, nil
	}
	return val, nil
}

// ChooseImageCount asks for one image more than the minimum, capped at the
// maximum unless the maximum is 0 (unbounded).
func ChooseImageCount(capabilities SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

// ChooseSharingMode shares swapchain images concurrently between the
// graphics and present families when they differ. indices must be complete.
func ChooseSharingMode(indices QueueFamilyIndices) (SharingMode, []int) {
	if *indices.GraphicsFamily != *indices.PresentFamily {
		return SharingModeConcurrent, []int{*indices.GraphicsFamily, *indices.PresentFamily}
	}
	return SharingModeExclusive, nil
}
