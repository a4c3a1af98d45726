package vkngdriver

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

type PhysicalDevice struct {
	instance *Instance
	handle   core1_0.PhysicalDevice
}

func (d *PhysicalDevice) Properties() (gpu.PhysicalDeviceProperties, error) {
	properties, err := d.instance.driver.GetPhysicalDeviceProperties(d.handle)
	if err != nil {
		return gpu.PhysicalDeviceProperties{}, err
	}

	return gpu.PhysicalDeviceProperties{
		DeviceName:        properties.Name,
		DeviceType:        gpu.PhysicalDeviceType(properties.Type),
		VendorID:          properties.VendorID,
		DeviceID:          properties.DeviceID,
		DriverVersion:     uint32(properties.DriverVersion),
		PipelineCacheUUID: properties.PipelineCacheUUID,
	}, nil
}

func (d *PhysicalDevice) QueueFamilyProperties() ([]gpu.QueueFamilyProperties, error) {
	queueFamilies := d.instance.driver.GetPhysicalDeviceQueueFamilyProperties(d.handle)

	families := make([]gpu.QueueFamilyProperties, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		families = append(families, gpu.QueueFamilyProperties{
			QueueFlags: gpu.QueueFlags(queueFamily.QueueFlags),
			QueueCount: queueFamily.QueueCount,
		})
	}
	return families, nil
}

func (d *PhysicalDevice) AvailableLayers() ([]string, error) {
	layers, _, err := d.instance.driver.EnumerateDeviceLayerProperties(d.handle)
	if err != nil {
		return nil, err
	}

	return sortedKeys(layers), nil
}

func (d *PhysicalDevice) AvailableExtensions() ([]string, error) {
	extensions, _, err := d.instance.driver.EnumerateDeviceExtensionProperties(d.handle)
	if err != nil {
		return nil, err
	}

	return sortedKeys(extensions), nil
}

func (d *PhysicalDevice) SurfaceSupport(surface gpu.Surface, queueFamilyIndex int) (bool, error) {
	handle, err := handleOf[khr_surface.Surface](surface, "surface")
	if err != nil {
		return false, err
	}

	supported, _, err := d.instance.surfaceExtension.GetPhysicalDeviceSurfaceSupport(handle, d.handle, queueFamilyIndex)
	return supported, err
}

func (d *PhysicalDevice) SurfaceCapabilities(surface gpu.Surface) (gpu.SurfaceCapabilities, error) {
	handle, err := handleOf[khr_surface.Surface](surface, "surface")
	if err != nil {
		return gpu.SurfaceCapabilities{}, err
	}

	capabilities, _, err := d.instance.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(handle, d.handle)
	if err != nil {
		return gpu.SurfaceCapabilities{}, err
	}

	return gpu.SurfaceCapabilities{
		MinImageCount: capabilities.MinImageCount,
		MaxImageCount: capabilities.MaxImageCount,

		CurrentExtent:  toExtent(capabilities.CurrentExtent),
		MinImageExtent: toExtent(capabilities.MinImageExtent),
		MaxImageExtent: toExtent(capabilities.MaxImageExtent),

		MaxImageArrayLayers: capabilities.MaxImageArrayLayers,

		SupportedTransforms:     gpu.SurfaceTransformFlags(capabilities.SupportedTransforms),
		CurrentTransform:        gpu.SurfaceTransformFlags(capabilities.CurrentTransform),
		SupportedCompositeAlpha: gpu.CompositeAlphaFlags(capabilities.SupportedCompositeAlpha),
	}, nil
}

func (d *PhysicalDevice) SurfaceFormats(surface gpu.Surface) ([]gpu.SurfaceFormat, error) {
	handle, err := handleOf[khr_surface.Surface](surface, "surface")
	if err != nil {
		return nil, err
	}

	surfaceFormats, _, err := d.instance.surfaceExtension.GetPhysicalDeviceSurfaceFormats(handle, d.handle)
	if err != nil {
		return nil, err
	}

	formats := make([]gpu.SurfaceFormat, 0, len(surfaceFormats))
	for _, format := range surfaceFormats {
		formats = append(formats, gpu.SurfaceFormat{
			Format:     gpu.Format(format.Format),
			ColorSpace: gpu.ColorSpace(format.ColorSpace),
		})
	}
	return formats, nil
}

func (d *PhysicalDevice) SurfacePresentModes(surface gpu.Surface) ([]gpu.PresentMode, error) {
	handle, err := handleOf[khr_surface.Surface](surface, "surface")
	if err != nil {
		return nil, err
	}

	presentModes, _, err := d.instance.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(handle, d.handle)
	if err != nil {
		return nil, err
	}

	modes := make([]gpu.PresentMode, 0, len(presentModes))
	for _, mode := range presentModes {
		modes = append(modes, gpu.PresentMode(mode))
	}
	return modes, nil
}

func (d *PhysicalDevice) CreateDevice(info gpu.DeviceCreateInfo) (gpu.Device, error) {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	for _, queue := range info.QueueCreateInfos {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queue.QueueFamilyIndex,
			QueuePriorities:  queue.QueuePriorities,
		})
	}

	deviceDriver, res, err := d.instance.driver.CreateDevice(d.handle, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledExtensionNames: info.EnabledExtensionNames,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateDevice returned %v", res)
	}

	return &Device{
		driver:             deviceDriver,
		swapchainExtension: khr_swapchain.CreateExtensionDriverFromCoreDriver(deviceDriver),
	}, nil
}

func toExtent(extent core1_0.Extent2D) gpu.Extent2D {
	return gpu.Extent2D{Width: extent.Width, Height: extent.Height}
}

func fromExtent(extent gpu.Extent2D) core1_0.Extent2D {
	return core1_0.Extent2D{Width: extent.Width, Height: extent.Height}
}
