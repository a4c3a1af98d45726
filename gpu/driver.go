package gpu

// Loader is the entry point into the native graphics API, before any
// instance exists.
type Loader interface {
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)
	CreateInstance(info InstanceCreateInfo) (Instance, error)
}

type Instance interface {
	CreateDebugMessenger(info DebugMessengerCreateInfo) (DebugMessenger, error)
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)
	Destroy()
}

type DebugMessenger interface {
	Destroy()
}

type Surface interface {
	Destroy()
}

// PhysicalDevice is a non-owning handle to one GPU reported by the driver.
type PhysicalDevice interface {
	Properties() (PhysicalDeviceProperties, error)
	QueueFamilyProperties() ([]QueueFamilyProperties, error)
	AvailableLayers() ([]string, error)
	AvailableExtensions() ([]string, error)

	SurfaceSupport(surface Surface, queueFamilyIndex int) (bool, error)
	SurfaceCapabilities(surface Surface) (SurfaceCapabilities, error)
	SurfaceFormats(surface Surface) ([]SurfaceFormat, error)
	SurfacePresentModes(surface Surface) ([]PresentMode, error)

	CreateDevice(info DeviceCreateInfo) (Device, error)
}

type Device interface {
	// GetQueue returns a view derived from the device. Queues are never
	// destroyed on their own; destroying the device invalidates them.
	GetQueue(queueFamilyIndex, queueIndex int) Queue

	CreateSwapchain(info SwapchainCreateInfo) (Swapchain, error)
	CreateImageView(info ImageViewCreateInfo) (ImageView, error)
	CreateRenderPass(info RenderPassCreateInfo) (RenderPass, error)
	CreateShaderModule(code []uint32) (ShaderModule, error)
	CreatePipelineLayout(info PipelineLayoutCreateInfo) (PipelineLayout, error)
	CreateGraphicsPipeline(info GraphicsPipelineCreateInfo) (Pipeline, error)
	CreateFramebuffer(info FramebufferCreateInfo) (Framebuffer, error)

	WaitIdle() error
	Destroy()
}

type Queue interface{}

// Image is a presentable image owned by its swapchain. It is never destroyed
// individually.
type Image interface{}

type Swapchain interface {
	Images() ([]Image, error)
	Destroy()
}

type ImageView interface {
	Destroy()
}

type RenderPass interface {
	Destroy()
}

type ShaderModule interface {
	Destroy()
}

type PipelineLayout interface {
	Destroy()
}

type Pipeline interface {
	Destroy()
}

type Framebuffer interface {
	Destroy()
}

// Window is the windowing collaborator that owns the drawable target.
type Window interface {
	// RequiredInstanceExtensions lists the surface integration extensions
	// the platform needs.
	RequiredInstanceExtensions() []string
	CreateSurface(instance Instance) (Surface, error)
	// PhysicalSize is the drawable size in pixels.
	PhysicalSize() (width, height int)
	ScaleFactor() float64
}

// ShaderSource hands out compiled shader binaries by name. A packr.Box
// satisfies it.
type ShaderSource interface {
	Find(name string) ([]byte, error)
}

type ShaderSourceFunc func(name string) ([]byte, error)

func (f ShaderSourceFunc) Find(name string) ([]byte, error) {
	return f(name)
}

type MessageSeverity uint32

const (
	SeverityVerbose MessageSeverity = 0x1
	SeverityInfo    MessageSeverity = 0x10
	SeverityWarning MessageSeverity = 0x100
	SeverityError   MessageSeverity = 0x1000
)

type MessageType uint32

const (
	TypeGeneral     MessageType = 0x1
	TypeValidation  MessageType = 0x2
	TypePerformance MessageType = 0x4
)

type DebugCallback func(severity MessageSeverity, msgType MessageType, message string)

type DebugMessengerCreateInfo struct {
	Severities MessageSeverity
	Types      MessageType
	Callback   DebugCallback
}

type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	EnabledLayerNames     []string
	EnabledExtensionNames []string

	// EnumeratePortability sets the portability enumeration create flag
	EnumeratePortability bool

	// DebugMessenger, when set, is chained onto instance creation so that
	// messages emitted while creating and destroying the instance are
	// reported too.
	DebugMessenger *DebugMessengerCreateInfo
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
}

type SwapchainCreateInfo struct {
	Surface Surface

	MinImageCount    int
	ImageFormat      Format
	ImageColorSpace  ColorSpace
	ImageExtent      Extent2D
	ImageArrayLayers int

	ImageSharingMode   SharingMode
	QueueFamilyIndices []int

	PreTransform   SurfaceTransformFlags
	CompositeAlpha CompositeAlphaFlags
	PresentMode    PresentMode
	Clipped        bool
}

// ImageViewCreateInfo describes a 2D color view with identity swizzle over
// a single mip level and array layer.
type ImageViewCreateInfo struct {
	Image  Image
	Format Format
}
