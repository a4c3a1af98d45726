package gpu

import (
	"fmt"

	"github.com/google/uuid"
)

// The enums below carry the numeric values of their Vulkan counterparts so a
// driver backend can convert them with a plain cast.

type Format int32

const (
	FormatUndefined                  Format = 0
	FormatB8G8R8A8UnsignedNormalized Format = 44
	FormatB8G8R8A8SRGB               Format = 50
)

type ColorSpace int32

const (
	ColorSpaceSRGBNonlinear ColorSpace = 0
)

type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}

func (f SurfaceFormat) String() string {
	return fmt.Sprintf("format %d / color space %d", f.Format, f.ColorSpace)
}

type PresentMode int32

const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFIFO        PresentMode = 2
	PresentModeFIFORelaxed PresentMode = 3
)

var presentModeNames = map[PresentMode]string{
	PresentModeImmediate:   "Immediate",
	PresentModeMailbox:     "Mailbox",
	PresentModeFIFO:        "FIFO",
	PresentModeFIFORelaxed: "FIFO Relaxed",
}

func (m PresentMode) String() string {
	name, ok := presentModeNames[m]
	if !ok {
		return fmt.Sprintf("PresentMode(%d)", int32(m))
	}
	return name
}

type QueueFlags uint32

const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

type SurfaceTransformFlags uint32

const (
	TransformIdentity SurfaceTransformFlags = 0x1
)

type CompositeAlphaFlags uint32

const (
	CompositeAlphaOpaque CompositeAlphaFlags = 0x1
)

type SharingMode int32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

func (m SharingMode) String() string {
	if m == SharingModeConcurrent {
		return "Concurrent"
	}
	return "Exclusive"
}

type PhysicalDeviceType int32

const (
	DeviceTypeOther         PhysicalDeviceType = 0
	DeviceTypeIntegratedGPU PhysicalDeviceType = 1
	DeviceTypeDiscreteGPU   PhysicalDeviceType = 2
	DeviceTypeVirtualGPU    PhysicalDeviceType = 3
	DeviceTypeCPU           PhysicalDeviceType = 4
)

// Extent2D mirrors VkExtent2D. Dimensions are ints, as in vkngwrapper.
type Extent2D struct {
	Width  int
	Height int
}

type Offset2D struct {
	X int
	Y int
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type SurfaceCapabilities struct {
	MinImageCount int
	// MaxImageCount of 0 means there is no upper bound
	MaxImageCount int

	CurrentExtent  Extent2D
	MinImageExtent Extent2D
	MaxImageExtent Extent2D

	MaxImageArrayLayers int

	SupportedTransforms     SurfaceTransformFlags
	CurrentTransform        SurfaceTransformFlags
	SupportedCompositeAlpha CompositeAlphaFlags
}

type QueueFamilyProperties struct {
	QueueFlags QueueFlags
	QueueCount int
}

type PhysicalDeviceProperties struct {
	DeviceName        string
	DeviceType        PhysicalDeviceType
	VendorID          uint32
	DeviceID          uint32
	DriverVersion     uint32
	PipelineCacheUUID uuid.UUID
}

type Version uint32

func CreateVersion(major, minor, patch uint32) Version {
	return Version((major << 22) | (minor << 12) | patch)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", uint32(v)>>22, (uint32(v)>>12)&0x3ff, uint32(v)&0xfff)
}
