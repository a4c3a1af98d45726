package vkngdriver

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// wrapper is implemented by every object this package hands out, so a
// handle can be recovered from the gpu interface it was returned as.
type wrapper[H any] interface {
	vkHandle() H
}

func handleOf[H any](obj interface{}, what string) (H, error) {
	w, ok := obj.(wrapper[H])
	if !ok {
		var zero H
		return zero, errors.Newf("%s %T was not created by vkngdriver", what, obj)
	}
	return w.vkHandle(), nil
}

type Device struct {
	driver             core1_0.CoreDeviceDriver
	swapchainExtension khr_swapchain.ExtensionDriver
}

func (d *Device) GetQueue(queueFamilyIndex, queueIndex int) gpu.Queue {
	return d.driver.GetQueue(queueFamilyIndex, queueIndex)
}

func (d *Device) CreateSwapchain(info gpu.SwapchainCreateInfo) (gpu.Swapchain, error) {
	surface, err := handleOf[khr_surface.Surface](info.Surface, "surface")
	if err != nil {
		return nil, err
	}

	swapchain, res, err := d.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    info.MinImageCount,
		ImageFormat:      core1_0.Format(info.ImageFormat),
		ImageColorSpace:  khr_surface.ColorSpace(info.ImageColorSpace),
		ImageExtent:      fromExtent(info.ImageExtent),
		ImageArrayLayers: info.ImageArrayLayers,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   core1_0.SharingMode(info.ImageSharingMode),
		QueueFamilyIndices: info.QueueFamilyIndices,

		PreTransform:   khr_surface.SurfaceTransformFlags(info.PreTransform),
		CompositeAlpha: khr_surface.CompositeAlphaFlags(info.CompositeAlpha),
		PresentMode:    khr_surface.PresentMode(info.PresentMode),
		Clipped:        info.Clipped,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateSwapchainKHR returned %v", res)
	}

	return &Swapchain{device: d, handle: swapchain}, nil
}

func (d *Device) CreateImageView(info gpu.ImageViewCreateInfo) (gpu.ImageView, error) {
	image, ok := info.Image.(core1_0.Image)
	if !ok {
		return nil, errors.Newf("image %T was not created by vkngdriver", info.Image)
	}

	imageView, res, err := d.driver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    image,
		ViewType: core1_0.ImageViewType2D,
		Format:   core1_0.Format(info.Format),
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateImageView returned %v", res)
	}

	return &ImageView{device: d, handle: imageView}, nil
}

func (d *Device) CreateRenderPass(info gpu.RenderPassCreateInfo) (gpu.RenderPass, error) {
	renderPass, res, err := d.driver.CreateRenderPass(nil, renderPassOptions(info))
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateRenderPass returned %v", res)
	}

	return &RenderPass{device: d, handle: renderPass}, nil
}

func (d *Device) CreateShaderModule(code []uint32) (gpu.ShaderModule, error) {
	shaderModule, res, err := d.driver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: code,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateShaderModule returned %v", res)
	}

	return &ShaderModule{device: d, handle: shaderModule}, nil
}

func (d *Device) CreatePipelineLayout(info gpu.PipelineLayoutCreateInfo) (gpu.PipelineLayout, error) {
	pipelineLayout, res, err := d.driver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreatePipelineLayout returned %v", res)
	}

	return &PipelineLayout{device: d, handle: pipelineLayout}, nil
}

func (d *Device) CreateGraphicsPipeline(info gpu.GraphicsPipelineCreateInfo) (gpu.Pipeline, error) {
	pipelineOptions, err := graphicsPipelineOptions(info)
	if err != nil {
		return nil, err
	}

	pipelines, res, err := d.driver.CreateGraphicsPipelines(nil, nil, pipelineOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateGraphicsPipelines returned %v", res)
	}

	return &Pipeline{device: d, handle: pipelines[0]}, nil
}

func (d *Device) CreateFramebuffer(info gpu.FramebufferCreateInfo) (gpu.Framebuffer, error) {
	renderPass, err := handleOf[core1_0.RenderPass](info.RenderPass, "render pass")
	if err != nil {
		return nil, err
	}

	var attachments []core1_0.ImageView
	for _, attachment := range info.Attachments {
		imageView, err := handleOf[core1_0.ImageView](attachment, "image view")
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, imageView)
	}

	framebuffer, res, err := d.driver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  renderPass,
		Layers:      info.Layers,
		Attachments: attachments,
		Width:       info.Width,
		Height:      info.Height,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateFramebuffer returned %v", res)
	}

	return &Framebuffer{device: d, handle: framebuffer}, nil
}

func (d *Device) WaitIdle() error {
	_, err := d.driver.DeviceWaitIdle()
	return err
}

func (d *Device) Destroy() {
	d.driver.DestroyDevice(nil)
}

type Swapchain struct {
	device *Device
	handle khr_swapchain.Swapchain
}

func (s *Swapchain) Images() ([]gpu.Image, error) {
	swapchainImages, _, err := s.device.swapchainExtension.GetSwapchainImages(s.handle)
	if err != nil {
		return nil, err
	}

	images := make([]gpu.Image, 0, len(swapchainImages))
	for _, image := range swapchainImages {
		images = append(images, image)
	}
	return images, nil
}

func (s *Swapchain) Destroy() {
	s.device.swapchainExtension.DestroySwapchain(s.handle, nil)
}

type ImageView struct {
	device *Device
	handle core1_0.ImageView
}

func (v *ImageView) vkHandle() core1_0.ImageView { return v.handle }

func (v *ImageView) Destroy() {
	v.device.driver.DestroyImageView(v.handle, nil)
}

type RenderPass struct {
	device *Device
	handle core1_0.RenderPass
}

func (p *RenderPass) vkHandle() core1_0.RenderPass { return p.handle }

func (p *RenderPass) Destroy() {
	p.device.driver.DestroyRenderPass(p.handle, nil)
}

type ShaderModule struct {
	device *Device
	handle core1_0.ShaderModule
}

func (m *ShaderModule) vkHandle() core1_0.ShaderModule { return m.handle }

func (m *ShaderModule) Destroy() {
	m.device.driver.DestroyShaderModule(m.handle, nil)
}

type PipelineLayout struct {
	device *Device
	handle core1_0.PipelineLayout
}

func (l *PipelineLayout) vkHandle() core1_0.PipelineLayout { return l.handle }

func (l *PipelineLayout) Destroy() {
	l.device.driver.DestroyPipelineLayout(l.handle, nil)
}

type Pipeline struct {
	device *Device
	handle core1_0.Pipeline
}

func (p *Pipeline) Destroy() {
	p.device.driver.DestroyPipeline(p.handle, nil)
}

type Framebuffer struct {
	device *Device
	handle core1_0.Framebuffer
}

func (f *Framebuffer) Destroy() {
	f.device.driver.DestroyFramebuffer(f.handle, nil)
}
