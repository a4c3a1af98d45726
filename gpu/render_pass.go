package gpu

func (r *Renderer) createRenderPass() error {
	renderPass, err := r.device.Device.CreateRenderPass(renderPassCreateInfo(r.swapchain.Format.Format))
	if err != nil {
		return creationFailure(err, "render pass")
	}
	r.cleanups.push(StepRenderPass, "render pass", renderPass.Destroy)

	r.pipeline = &PipelineBundle{RenderPass: renderPass}
	return nil
}

// createGraphicsPipeline builds the layout and pipeline. The shader modules
// only need to live until the pipeline exists.
func (r *Renderer) createGraphicsPipeline() error {
	vertShader, err := loadShaderModule(r.device.Device, r.shaders, r.config.VertexShader)
	if err != nil {
		return err
	}
	defer vertShader.Destroy()

	fragShader, err := loadShaderModule(r.device.Device, r.shaders, r.config.FragmentShader)
	if err != nil {
		return err
	}
	defer fragShader.Destroy()

	pipelineLayout, err := r.device.Device.CreatePipelineLayout(PipelineLayoutCreateInfo{})
	if err != nil {
		return creationFailure(err, "pipeline layout")
	}
	r.cleanups.push(StepGraphicsPipeline, "pipeline layout", pipelineLayout.Destroy)
	r.pipeline.PipelineLayout = pipelineLayout

	pipeline, err := r.device.Device.CreateGraphicsPipeline(graphicsPipelineCreateInfo(
		r.swapchain.Extent, vertShader, fragShader, pipelineLayout, r.pipeline.RenderPass,
	))
	if err != nil {
		return creationFailure(err, "graphics pipeline")
	}
	r.cleanups.push(StepGraphicsPipeline, "graphics pipeline", pipeline.Destroy)
	r.pipeline.Pipeline = pipeline

	return nil
}

func (r *Renderer) createFramebuffers() error {
	framebuffers := &FramebufferSet{}
	for _, view := range r.swapchain.ImageViews {
		framebuffer, err := r.device.Device.CreateFramebuffer(framebufferCreateInfo(r.pipeline.RenderPass, view, r.swapchain.Extent))
		if err != nil {
			return creationFailure(err, "framebuffer")
		}
		r.cleanups.push(StepFramebuffers, "framebuffer", framebuffer.Destroy)

		framebuffers.Framebuffers = append(framebuffers.Framebuffers, framebuffer)
	}

	r.framebuffers = framebuffers
	return nil
}
