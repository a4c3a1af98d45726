package gpu

import (
	"github.com/sirupsen/logrus"
)

func (r *Renderer) createSwapchain() error {
	swapchainSupport, err := ProbeSurface(r.selection.PhysicalDevice, r.surface.Surface)
	if err != nil {
		return err
	}

	if len(swapchainSupport.Formats) == 0 || len(swapchainSupport.PresentModes) == 0 {
		return unsupportedf("surface reports %d formats and %d present modes", len(swapchainSupport.Formats), len(swapchainSupport.PresentModes))
	}

	surfaceFormat := ChooseSurfaceFormat(swapchainSupport.Formats)
	presentMode := ChoosePresentMode(swapchainSupport.PresentModes)

	physicalWidth, physicalHeight := r.window.PhysicalSize()
	extent, err := ChooseExtent(swapchainSupport.Capabilities, physicalWidth, physicalHeight, r.window.ScaleFactor())
	if err != nil {
		return err
	}

	imageCount := ChooseImageCount(swapchainSupport.Capabilities)
	sharingMode, queueFamilyIndices := ChooseSharingMode(r.selection.QueueFamilyIndices())

	swapchain, err := r.device.Device.CreateSwapchain(SwapchainCreateInfo{
		Surface: r.surface.Surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   swapchainSupport.Capabilities.CurrentTransform,
		CompositeAlpha: CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return creationFailure(err, "swapchain")
	}
	r.cleanups.push(StepSwapchain, "swapchain", swapchain.Destroy)

	images, err := swapchain.Images()
	if err != nil {
		return queryFailure(err, "swapchain images")
	}

	r.swapchain = &SwapchainBundle{
		Swapchain:   swapchain,
		Format:      surfaceFormat,
		Extent:      extent,
		PresentMode: presentMode,
		ImageCount:  imageCount,
		SharingMode: sharingMode,
		Images:      images,
	}

	r.logger.WithFields(logrus.Fields{
		"format":  surfaceFormat,
		"extent":  extent,
		"mode":    presentMode,
		"images":  len(images),
		"sharing": sharingMode,
	}).Debug("swapchain created")

	return nil
}

func (r *Renderer) createImageViews() error {
	for _, image := range r.swapchain.Images {
		view, err := r.device.Device.CreateImageView(ImageViewCreateInfo{
			Image:  image,
			Format: r.swapchain.Format.Format,
		})
		if err != nil {
			return creationFailure(err, "image view")
		}
		r.cleanups.push(StepImageViews, "image view", view.Destroy)

		r.swapchain.ImageViews = append(r.swapchain.ImageViews, view)
	}

	return nil
}
