package gpu

type ImageLayout int32

const (
	ImageLayoutUndefined              ImageLayout = 0
	ImageLayoutColorAttachmentOptimal ImageLayout = 2
	ImageLayoutPresentSrc             ImageLayout = 1000001002
)

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type SampleCountFlags uint32

const Samples1 SampleCountFlags = 0x1

type PipelineStageFlags uint32

const PipelineStageColorAttachmentOutput PipelineStageFlags = 0x400

type AccessFlags uint32

const AccessColorAttachmentWrite AccessFlags = 0x100

// SubpassExternal refers to operations outside the render pass in a
// subpass dependency.
const SubpassExternal = -1

type AttachmentDescription struct {
	Format         Format
	Samples        SampleCountFlags
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment int
	Layout     ImageLayout
}

// SubpassDescription is always bound to the graphics pipeline bind point.
type SubpassDescription struct {
	ColorAttachments []AttachmentReference
}

type SubpassDependency struct {
	SrcSubpass int
	DstSubpass int

	SrcStageMask  PipelineStageFlags
	SrcAccessMask AccessFlags

	DstStageMask  PipelineStageFlags
	DstAccessMask AccessFlags
}

type RenderPassCreateInfo struct {
	Attachments         []AttachmentDescription
	Subpasses           []SubpassDescription
	SubpassDependencies []SubpassDependency
}

type ShaderStageFlags uint32

const (
	StageVertex   ShaderStageFlags = 0x1
	StageFragment ShaderStageFlags = 0x10
)

type PipelineShaderStage struct {
	Stage  ShaderStageFlags
	Module ShaderModule
	Name   string
}

type PrimitiveTopology int32

const PrimitiveTopologyTriangleList PrimitiveTopology = 3

type PolygonMode int32

const PolygonModeFill PolygonMode = 0

type CullModeFlags uint32

const CullModeBack CullModeFlags = 0x2

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type ColorComponentFlags uint32

const (
	ColorComponentRed   ColorComponentFlags = 0x1
	ColorComponentGreen ColorComponentFlags = 0x2
	ColorComponentBlue  ColorComponentFlags = 0x4
	ColorComponentAlpha ColorComponentFlags = 0x8
)

type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

type RasterizationState struct {
	DepthClampEnable        bool
	RasterizerDiscardEnable bool

	PolygonMode PolygonMode
	CullMode    CullModeFlags
	FrontFace   FrontFace

	LineWidth float32
}

type ColorBlendAttachmentState struct {
	BlendEnabled   bool
	ColorWriteMask ColorComponentFlags
}

// PipelineLayoutCreateInfo describes a layout without descriptor sets or
// push constant ranges.
type PipelineLayoutCreateInfo struct{}

type GraphicsPipelineCreateInfo struct {
	Stages   []PipelineShaderStage
	Topology PrimitiveTopology

	Viewports []Viewport
	Scissors  []Rect2D

	Rasterization         RasterizationState
	RasterizationSamples  SampleCountFlags
	ColorBlendAttachments []ColorBlendAttachmentState

	Layout     PipelineLayout
	RenderPass RenderPass
	Subpass    int
}

type FramebufferCreateInfo struct {
	RenderPass  RenderPass
	Attachments []ImageView
	Width       int
	Height      int
	Layers      int
}

// renderPassCreateInfo describes a single-subpass pass that clears one color
// attachment in the swapchain format and leaves it ready for presentation.
func renderPassCreateInfo(format Format) RenderPassCreateInfo {
	return RenderPassCreateInfo{
		Attachments: []AttachmentDescription{
			{
				Format:         format,
				Samples:        Samples1,
				LoadOp:         AttachmentLoadOpClear,
				StoreOp:        AttachmentStoreOpStore,
				StencilLoadOp:  AttachmentLoadOpDontCare,
				StencilStoreOp: AttachmentStoreOpDontCare,
				InitialLayout:  ImageLayoutUndefined,
				FinalLayout:    ImageLayoutPresentSrc,
			},
		},
		Subpasses: []SubpassDescription{
			{
				ColorAttachments: []AttachmentReference{
					{
						Attachment: 0,
						Layout:     ImageLayoutColorAttachmentOptimal,
					},
				},
			},
		},
		SubpassDependencies: []SubpassDependency{
			{
				SrcSubpass: SubpassExternal,
				DstSubpass: 0,

				SrcStageMask:  PipelineStageColorAttachmentOutput,
				SrcAccessMask: 0,

				DstStageMask:  PipelineStageColorAttachmentOutput,
				DstAccessMask: AccessColorAttachmentWrite,
			},
		},
	}
}

func graphicsPipelineCreateInfo(extent Extent2D, vertShader, fragShader ShaderModule, layout PipelineLayout, renderPass RenderPass) GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{
		Stages: []PipelineShaderStage{
			{
				Stage:  StageVertex,
				Module: vertShader,
				Name:   "main",
			},
			{
				Stage:  StageFragment,
				Module: fragShader,
				Name:   "main",
			},
		},
		Topology: PrimitiveTopologyTriangleList,

		Viewports: []Viewport{
			{
				X:        0,
				Y:        0,
				Width:    float32(extent.Width),
				Height:   float32(extent.Height),
				MinDepth: 0,
				MaxDepth: 1,
			},
		},
		Scissors: []Rect2D{
			{
				Offset: Offset2D{X: 0, Y: 0},
				Extent: extent,
			},
		},

		Rasterization: RasterizationState{
			DepthClampEnable:        false,
			RasterizerDiscardEnable: false,

			PolygonMode: PolygonModeFill,
			CullMode:    CullModeBack,
			FrontFace:   FrontFaceClockwise,

			LineWidth: 1.0,
		},
		RasterizationSamples: Samples1,

		ColorBlendAttachments: []ColorBlendAttachmentState{
			{
				BlendEnabled:   false,
				ColorWriteMask: ColorComponentRed | ColorComponentGreen | ColorComponentBlue | ColorComponentAlpha,
			},
		},

		Layout:     layout,
		RenderPass: renderPass,
		Subpass:    0,
	}
}

func framebufferCreateInfo(renderPass RenderPass, view ImageView, extent Extent2D) FramebufferCreateInfo {
	return FramebufferCreateInfo{
		RenderPass:  renderPass,
		Attachments: []ImageView{view},
		Width:       extent.Width,
		Height:      extent.Height,
		Layers:      1,
	}
}
