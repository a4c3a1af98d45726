package gpu

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// callLog records every create and destroy the fake driver sees, in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...interface{}) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

// destroyed returns the destroy calls only, in the order they happened.
func (l *callLog) destroyed() []string {
	var out []string
	for _, call := range l.calls {
		if len(call) > 8 && call[:8] == "destroy " {
			out = append(out, call[8:])
		}
	}
	return out
}

func (l *callLog) created() []string {
	var out []string
	for _, call := range l.calls {
		if len(call) > 7 && call[:7] == "create " {
			out = append(out, call[7:])
		}
	}
	return out
}

type fakeObject struct {
	log  *callLog
	name string
}

func newFakeObject(log *callLog, name string) *fakeObject {
	log.add("create %s", name)
	return &fakeObject{log: log, name: name}
}

func (o *fakeObject) Destroy() {
	o.log.add("destroy %s", o.name)
}

var errDriver = errors.New("VK_ERROR_INITIALIZATION_FAILED")

type fakeLoader struct {
	log *callLog

	layers     []string
	extensions []string

	layersErr    error
	createErr    error
	messengerErr error
	enumerateErr error

	devices []PhysicalDevice

	instanceInfo InstanceCreateInfo
}

func (l *fakeLoader) AvailableLayers() ([]string, error) {
	return l.layers, l.layersErr
}

func (l *fakeLoader) AvailableExtensions() ([]string, error) {
	return l.extensions, nil
}

func (l *fakeLoader) CreateInstance(info InstanceCreateInfo) (Instance, error) {
	l.instanceInfo = info
	if l.createErr != nil {
		return nil, l.createErr
	}
	return &fakeInstance{fakeObject: newFakeObject(l.log, "instance"), loader: l}, nil
}

type fakeInstance struct {
	*fakeObject
	loader *fakeLoader
}

func (i *fakeInstance) CreateDebugMessenger(info DebugMessengerCreateInfo) (DebugMessenger, error) {
	if i.loader.messengerErr != nil {
		return nil, i.loader.messengerErr
	}
	return newFakeObject(i.log, "debug messenger"), nil
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]PhysicalDevice, error) {
	return i.loader.devices, i.loader.enumerateErr
}

type fakePhysicalDevice struct {
	log *callLog

	properties   PhysicalDeviceProperties
	families     []QueueFamilyProperties
	present      []bool
	extensions   []string
	capabilities SurfaceCapabilities
	formats      []SurfaceFormat
	presentModes []PresentMode

	propertiesErr   error
	capabilitiesErr error
	createErr       error

	// failOn makes the logical device fail to create the named object kind
	failOn map[string]error
	images int

	deviceInfo DeviceCreateInfo
	device     *fakeDevice
}

func (d *fakePhysicalDevice) Properties() (PhysicalDeviceProperties, error) {
	return d.properties, d.propertiesErr
}

func (d *fakePhysicalDevice) QueueFamilyProperties() ([]QueueFamilyProperties, error) {
	return d.families, nil
}

func (d *fakePhysicalDevice) AvailableLayers() ([]string, error) {
	return nil, nil
}

func (d *fakePhysicalDevice) AvailableExtensions() ([]string, error) {
	return d.extensions, nil
}

func (d *fakePhysicalDevice) SurfaceSupport(surface Surface, queueFamilyIndex int) (bool, error) {
	return d.present[queueFamilyIndex], nil
}

func (d *fakePhysicalDevice) SurfaceCapabilities(surface Surface) (SurfaceCapabilities, error) {
	return d.capabilities, d.capabilitiesErr
}

func (d *fakePhysicalDevice) SurfaceFormats(surface Surface) ([]SurfaceFormat, error) {
	return d.formats, nil
}

func (d *fakePhysicalDevice) SurfacePresentModes(surface Surface) ([]PresentMode, error) {
	return d.presentModes, nil
}

func (d *fakePhysicalDevice) CreateDevice(info DeviceCreateInfo) (Device, error) {
	d.deviceInfo = info
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.device = &fakeDevice{fakeObject: newFakeObject(d.log, "logical device"), physical: d}
	return d.device, nil
}

type fakeDevice struct {
	*fakeObject
	physical *fakePhysicalDevice

	swapchainInfo SwapchainCreateInfo
	pipelineInfo  GraphicsPipelineCreateInfo
	shaderCode    [][]uint32
	waitedIdle    int
}

func (d *fakeDevice) create(kind string) (*fakeObject, error) {
	if err := d.physical.failOn[kind]; err != nil {
		return nil, err
	}
	return newFakeObject(d.log, kind), nil
}

func (d *fakeDevice) GetQueue(queueFamilyIndex, queueIndex int) Queue {
	return fmt.Sprintf("queue %d/%d", queueFamilyIndex, queueIndex)
}

func (d *fakeDevice) CreateSwapchain(info SwapchainCreateInfo) (Swapchain, error) {
	d.swapchainInfo = info
	obj, err := d.create("swapchain")
	if err != nil {
		return nil, err
	}
	return &fakeSwapchain{fakeObject: obj, images: d.physical.images}, nil
}

func (d *fakeDevice) CreateImageView(info ImageViewCreateInfo) (ImageView, error) {
	return d.create("image view")
}

func (d *fakeDevice) CreateRenderPass(info RenderPassCreateInfo) (RenderPass, error) {
	return d.create("render pass")
}

func (d *fakeDevice) CreateShaderModule(code []uint32) (ShaderModule, error) {
	d.shaderCode = append(d.shaderCode, code)
	return d.create("shader module")
}

func (d *fakeDevice) CreatePipelineLayout(info PipelineLayoutCreateInfo) (PipelineLayout, error) {
	return d.create("pipeline layout")
}

func (d *fakeDevice) CreateGraphicsPipeline(info GraphicsPipelineCreateInfo) (Pipeline, error) {
	d.pipelineInfo = info
	return d.create("graphics pipeline")
}

func (d *fakeDevice) CreateFramebuffer(info FramebufferCreateInfo) (Framebuffer, error) {
	return d.create("framebuffer")
}

func (d *fakeDevice) WaitIdle() error {
	d.waitedIdle++
	return nil
}

type fakeSwapchain struct {
	*fakeObject
	images int
}

func (s *fakeSwapchain) Images() ([]Image, error) {
	images := make([]Image, s.images)
	for i := range images {
		images[i] = i
	}
	return images, nil
}

type fakeWindow struct {
	log *callLog

	extensions []string
	width      int
	height     int
	scale      float64
	surfaceErr error
}

func (w *fakeWindow) RequiredInstanceExtensions() []string {
	return w.extensions
}

func (w *fakeWindow) CreateSurface(instance Instance) (Surface, error) {
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	return newFakeObject(w.log, "surface"), nil
}

func (w *fakeWindow) PhysicalSize() (int, int) {
	return w.width, w.height
}

func (w *fakeWindow) ScaleFactor() float64 {
	return w.scale
}

// spirvBlob is the smallest blob BytesToBytecode accepts.
var spirvBlob = []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00}

func fakeShaders() ShaderSource {
	return ShaderSourceFunc(func(name string) ([]byte, error) {
		switch name {
		case "vert.spv", "frag.spv":
			return spirvBlob, nil
		}
		return nil, errors.Newf("no shader named %s", name)
	})
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// goodPhysicalDevice has one family that does graphics and presents, offers
// the swapchain extension and the preferred format and mode.
func goodPhysicalDevice(log *callLog, name string) *fakePhysicalDevice {
	return &fakePhysicalDevice{
		log:        log,
		properties: PhysicalDeviceProperties{DeviceName: name, DeviceType: DeviceTypeDiscreteGPU},
		families: []QueueFamilyProperties{
			{QueueFlags: QueueGraphics | QueueCompute | QueueTransfer, QueueCount: 16},
		},
		present:    []bool{true},
		extensions: []string{SwapchainExtensionName},
		capabilities: SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    8,
			CurrentExtent:    Extent2D{Width: 800, Height: 600},
			MinImageExtent:   Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: TransformIdentity,
		},
		formats: []SurfaceFormat{
			{Format: FormatB8G8R8A8UnsignedNormalized, ColorSpace: ColorSpaceSRGBNonlinear},
			PreferredSurfaceFormat,
		},
		presentModes: []PresentMode{PresentModeFIFO, PresentModeMailbox},
		images:       3,
	}
}

type fixture struct {
	log    *callLog
	loader *fakeLoader
	window *fakeWindow
	device *fakePhysicalDevice
	config Config
}

func newFixture() *fixture {
	log := &callLog{}
	device := goodPhysicalDevice(log, "Fake GPU")
	return &fixture{
		log: log,
		loader: &fakeLoader{
			log:        log,
			layers:     []string{ValidationLayerName},
			extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface", DebugUtilsExtensionName},
			devices:    []PhysicalDevice{device},
		},
		window: &fakeWindow{
			log:        log,
			extensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface"},
			width:      800,
			height:     600,
			scale:      1,
		},
		device: device,
		config: DefaultConfig(),
	}
}

func (f *fixture) bootstrap() (*Renderer, error) {
	return Bootstrap(Options{
		Config:  f.config,
		Loader:  f.loader,
		Window:  f.window,
		Shaders: fakeShaders(),
		Logger:  quietLogger(),
	})
}
