package vkngdriver

import (
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func renderPassOptions(info gpu.RenderPassCreateInfo) core1_0.RenderPassCreateInfo {
	var options core1_0.RenderPassCreateInfo

	for _, attachment := range info.Attachments {
		options.Attachments = append(options.Attachments, core1_0.AttachmentDescription{
			Format:         core1_0.Format(attachment.Format),
			Samples:        core1_0.SampleCountFlags(attachment.Samples),
			LoadOp:         core1_0.AttachmentLoadOp(attachment.LoadOp),
			StoreOp:        core1_0.AttachmentStoreOp(attachment.StoreOp),
			StencilLoadOp:  core1_0.AttachmentLoadOp(attachment.StencilLoadOp),
			StencilStoreOp: core1_0.AttachmentStoreOp(attachment.StencilStoreOp),
			InitialLayout:  core1_0.ImageLayout(attachment.InitialLayout),
			FinalLayout:    core1_0.ImageLayout(attachment.FinalLayout),
		})
	}

	for _, subpass := range info.Subpasses {
		var colorAttachments []core1_0.AttachmentReference
		for _, ref := range subpass.ColorAttachments {
			colorAttachments = append(colorAttachments, core1_0.AttachmentReference{
				Attachment: ref.Attachment,
				Layout:     core1_0.ImageLayout(ref.Layout),
			})
		}

		options.Subpasses = append(options.Subpasses, core1_0.SubpassDescription{
			PipelineBindPoint: core1_0.PipelineBindPointGraphics,
			ColorAttachments:  colorAttachments,
		})
	}

	for _, dependency := range info.SubpassDependencies {
		options.SubpassDependencies = append(options.SubpassDependencies, core1_0.SubpassDependency{
			SrcSubpass: subpassIndex(dependency.SrcSubpass),
			DstSubpass: subpassIndex(dependency.DstSubpass),

			SrcStageMask:  core1_0.PipelineStageFlags(dependency.SrcStageMask),
			SrcAccessMask: core1_0.AccessFlags(dependency.SrcAccessMask),

			DstStageMask:  core1_0.PipelineStageFlags(dependency.DstStageMask),
			DstAccessMask: core1_0.AccessFlags(dependency.DstAccessMask),
		})
	}

	return options
}

func subpassIndex(subpass int) int {
	if subpass == gpu.SubpassExternal {
		return core1_0.SubpassExternal
	}
	return subpass
}

func graphicsPipelineOptions(info gpu.GraphicsPipelineCreateInfo) (core1_0.GraphicsPipelineCreateInfo, error) {
	var stages []core1_0.PipelineShaderStageCreateInfo
	for _, stage := range info.Stages {
		module, err := handleOf[core1_0.ShaderModule](stage.Module, "shader module")
		if err != nil {
			return core1_0.GraphicsPipelineCreateInfo{}, err
		}

		stages = append(stages, core1_0.PipelineShaderStageCreateInfo{
			Stage:  core1_0.ShaderStageFlags(stage.Stage),
			Module: module,
			Name:   stage.Name,
		})
	}

	layout, err := handleOf[core1_0.PipelineLayout](info.Layout, "pipeline layout")
	if err != nil {
		return core1_0.GraphicsPipelineCreateInfo{}, err
	}

	renderPass, err := handleOf[core1_0.RenderPass](info.RenderPass, "render pass")
	if err != nil {
		return core1_0.GraphicsPipelineCreateInfo{}, err
	}

	viewport := &core1_0.PipelineViewportStateCreateInfo{}
	for _, v := range info.Viewports {
		viewport.Viewports = append(viewport.Viewports, core1_0.Viewport{
			X:        v.X,
			Y:        v.Y,
			Width:    v.Width,
			Height:   v.Height,
			MinDepth: v.MinDepth,
			MaxDepth: v.MaxDepth,
		})
	}
	for _, scissor := range info.Scissors {
		viewport.Scissors = append(viewport.Scissors, core1_0.Rect2D{
			Offset: core1_0.Offset2D{X: scissor.Offset.X, Y: scissor.Offset.Y},
			Extent: fromExtent(scissor.Extent),
		})
	}

	colorBlend := &core1_0.PipelineColorBlendStateCreateInfo{
		LogicOpEnabled: false,
		LogicOp:        core1_0.LogicOpCopy,

		BlendConstants: [4]float32{0, 0, 0, 0},
	}
	for _, attachment := range info.ColorBlendAttachments {
		colorBlend.Attachments = append(colorBlend.Attachments, core1_0.PipelineColorBlendAttachmentState{
			BlendEnabled:   attachment.BlendEnabled,
			ColorWriteMask: core1_0.ColorComponentFlags(attachment.ColorWriteMask),
		})
	}

	return core1_0.GraphicsPipelineCreateInfo{
		Stages:           stages,
		VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{},
		InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
			Topology:               core1_0.PrimitiveTopology(info.Topology),
			PrimitiveRestartEnable: false,
		},
		ViewportState: viewport,
		RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
			DepthClampEnable:        info.Rasterization.DepthClampEnable,
			RasterizerDiscardEnable: info.Rasterization.RasterizerDiscardEnable,

			PolygonMode: core1_0.PolygonMode(info.Rasterization.PolygonMode),
			CullMode:    core1_0.CullModeFlags(info.Rasterization.CullMode),
			FrontFace:   core1_0.FrontFace(info.Rasterization.FrontFace),

			DepthBiasEnable: false,

			LineWidth: info.Rasterization.LineWidth,
		},
		MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
			SampleShadingEnable:  false,
			RasterizationSamples: core1_0.SampleCountFlags(info.RasterizationSamples),
			MinSampleShading:     1.0,
		},
		ColorBlendState: colorBlend,

		Layout:            layout,
		RenderPass:        renderPass,
		Subpass:           info.Subpass,
		BasePipelineIndex: -1,
	}, nil
}
