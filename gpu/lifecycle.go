package gpu

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

const (
	ValidationLayerName                 = "VK_LAYER_KHRONOS_validation"
	DebugUtilsExtensionName             = "VK_EXT_debug_utils"
	SwapchainExtensionName              = "VK_KHR_swapchain"
	PortabilityEnumerationExtensionName = "VK_KHR_portability_enumeration"
	PortabilitySubsetExtensionName      = "VK_KHR_portability_subset"
)

// Config is fixed for the lifetime of a Renderer. EnableValidation decides
// both whether the validation layers and debug messenger are created and
// whether the messenger is destroyed again.
type Config struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	EnableValidation bool
	ValidationLayers []string
	DebugSeverities  MessageSeverity

	DeviceExtensions []string

	VertexShader   string
	FragmentShader string
}

func DefaultConfig() Config {
	return Config{
		ApplicationName:    "Hello Triangle",
		ApplicationVersion: CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      CreateVersion(1, 0, 0),
		APIVersion:         CreateVersion(1, 2, 0),

		EnableValidation: true,
		ValidationLayers: []string{ValidationLayerName},
		DebugSeverities:  SeverityError | SeverityWarning,

		DeviceExtensions: []string{SwapchainExtensionName},

		VertexShader:   "vert.spv",
		FragmentShader: "frag.spv",
	}
}

type Options struct {
	Config  Config
	Loader  Loader
	Window  Window
	Shaders ShaderSource
	Logger  logrus.FieldLogger
}

// Context owns the instance and, with validation enabled, the debug
// messenger.
type Context struct {
	Instance          Instance
	DebugMessenger    DebugMessenger
	EnabledLayers     []string
	EnabledExtensions []string
}

type SurfaceBundle struct {
	Surface Surface
}

type DeviceSelection struct {
	PhysicalDevice PhysicalDevice
	Properties     PhysicalDeviceProperties
	Extensions     []string
	GraphicsFamily int
	PresentFamily  int
}

func (s DeviceSelection) QueueFamilyIndices() QueueFamilyIndices {
	graphics, present := s.GraphicsFamily, s.PresentFamily
	return QueueFamilyIndices{GraphicsFamily: &graphics, PresentFamily: &present}
}

type LogicalDeviceBundle struct {
	Device            Device
	GraphicsQueue     Queue
	PresentQueue      Queue
	EnabledExtensions []string
}

type SwapchainBundle struct {
	Swapchain   Swapchain
	Format      SurfaceFormat
	Extent      Extent2D
	PresentMode PresentMode
	ImageCount  int
	SharingMode SharingMode
	Images      []Image
	ImageViews  []ImageView
}

type PipelineBundle struct {
	RenderPass     RenderPass
	PipelineLayout PipelineLayout
	Pipeline       Pipeline
}

type FramebufferSet struct {
	Framebuffers []Framebuffer
}

// Renderer owns every native object created during bootstrap and releases
// them in reverse creation order exactly once. All calls must come from the
// thread that owns the graphics context.
type Renderer struct {
	config  Config
	loader  Loader
	window  Window
	shaders ShaderSource
	logger  logrus.FieldLogger

	state    State
	cleanups cleanupStack

	context      *Context
	surface      *SurfaceBundle
	selection    *DeviceSelection
	device       *LogicalDeviceBundle
	swapchain    *SwapchainBundle
	pipeline     *PipelineBundle
	framebuffers *FramebufferSet
}

type bootstrapStep struct {
	step Step
	run  func() error
	next State
}

// Bootstrap builds the whole chain from instance to framebuffers. Either the
// returned Renderer is Running, or every object created along the way has
// already been destroyed and the error is a *StepError naming the failed
// step.
func Bootstrap(options Options) (*Renderer, error) {
	if options.Loader == nil || options.Window == nil || options.Shaders == nil {
		return nil, &StepError{
			Step: StepInstance,
			Err:  contractViolationf("bootstrap requires a loader, a window and a shader source"),
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("session", uuid.New().String())

	r := &Renderer{
		config:  options.Config,
		loader:  options.Loader,
		window:  options.Window,
		shaders: options.Shaders,
		logger:  logger,
		state:   StateUninitialized,
	}
	r.cleanups.logger = logger

	steps := []bootstrapStep{
		{StepInstance, r.createInstance, StateInstanceReady},
		{StepDebugMessenger, r.setupDebugMessenger, StateInstanceReady},
		{StepSurface, r.createSurface, StateSurfaceReady},
		{StepPhysicalDevice, r.pickPhysicalDevice, StateDeviceSelected},
		{StepLogicalDevice, r.createLogicalDevice, StateLogicalDeviceReady},
		{StepSwapchain, r.createSwapchain, StateSwapchainReady},
		{StepImageViews, r.createImageViews, StateViewsReady},
		{StepRenderPass, r.createRenderPass, StateViewsReady},
		{StepGraphicsPipeline, r.createGraphicsPipeline, StatePipelineReady},
		{StepFramebuffers, r.createFramebuffers, StateFramebuffersReady},
	}

	bootStart := hrtime.Now()
	for _, s := range steps {
		start := hrtime.Now()
		err := s.run()
		elapsed := hrtime.Since(start)

		stepLogger := r.logger.WithFields(logrus.Fields{
			"step":    s.step,
			"elapsed": elapsed,
		})
		if err != nil {
			stepLogger.WithError(err).Error("bootstrap step failed, tearing down")
			r.teardown()
			return nil, &StepError{Step: s.step, Err: err}
		}

		r.state = s.next
		stepLogger.WithField("state", r.state).Debug("bootstrap step complete")
	}

	r.state = StateRunning
	r.logger.WithFields(logrus.Fields{
		"elapsed": hrtime.Since(bootStart),
		"device":  r.selection.Properties.DeviceName,
		"extent":  r.swapchain.Extent,
		"mode":    r.swapchain.PresentMode,
	}).Info("renderer running")

	return r, nil
}

// Destroy waits for the device to go idle and releases everything. Calling
// it more than once is harmless.
func (r *Renderer) Destroy() {
	if r.state == StateTornDown {
		return
	}

	if r.device != nil {
		if err := r.device.Device.WaitIdle(); err != nil {
			r.logger.WithError(errors.Wrap(err, "wait for device idle")).Warn("tearing down a busy device")
		}
	}

	r.teardown()
}

func (r *Renderer) teardown() {
	destroyed := r.cleanups.len()
	r.cleanups.unwind()

	r.context = nil
	r.surface = nil
	r.selection = nil
	r.device = nil
	r.swapchain = nil
	r.pipeline = nil
	r.framebuffers = nil
	r.state = StateTornDown

	r.logger.WithField("objects", destroyed).Info("renderer torn down")
}

func (r *Renderer) State() State {
	return r.state
}

func (r *Renderer) Config() Config {
	return r.config
}

func (r *Renderer) Context() (Context, bool) {
	if r.context == nil {
		return Context{}, false
	}
	return *r.context, true
}

func (r *Renderer) Surface() (SurfaceBundle, bool) {
	if r.surface == nil {
		return SurfaceBundle{}, false
	}
	return *r.surface, true
}

func (r *Renderer) DeviceSelection() (DeviceSelection, bool) {
	if r.selection == nil {
		return DeviceSelection{}, false
	}
	return *r.selection, true
}

func (r *Renderer) LogicalDevice() (LogicalDeviceBundle, bool) {
	if r.device == nil {
		return LogicalDeviceBundle{}, false
	}
	return *r.device, true
}

func (r *Renderer) Swapchain() (SwapchainBundle, bool) {
	if r.swapchain == nil {
		return SwapchainBundle{}, false
	}
	return *r.swapchain, true
}

func (r *Renderer) Pipeline() (PipelineBundle, bool) {
	if r.pipeline == nil || r.pipeline.Pipeline == nil {
		return PipelineBundle{}, false
	}
	return *r.pipeline, true
}

func (r *Renderer) Framebuffers() (FramebufferSet, bool) {
	if r.framebuffers == nil {
		return FramebufferSet{}, false
	}
	return *r.framebuffers, true
}
