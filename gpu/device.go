package gpu

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

func (r *Renderer) pickPhysicalDevice() error {
	physicalDevices, err := r.context.Instance.EnumeratePhysicalDevices()
	if err != nil {
		return queryFailure(err, "physical devices")
	}

	if len(physicalDevices) == 0 {
		return unsupportedf("failed to find GPUs with Vulkan support")
	}

	var rejections []string
	for deviceIdx, device := range physicalDevices {
		caps, err := ProbeDevice(device, r.surface.Surface)
		if err != nil {
			return err
		}

		var surfaceSupport *SurfaceSupport
		if HasAll(r.config.DeviceExtensions, caps.Extensions) {
			support, err := ProbeSurface(device, r.surface.Surface)
			if err != nil {
				return err
			}
			surfaceSupport = &support
		}

		suitable, reason := IsDeviceSuitable(caps, surfaceSupport, r.config.DeviceExtensions)
		if !suitable {
			r.logger.WithFields(logrus.Fields{
				"device": caps.Properties.DeviceName,
				"reason": reason,
			}).Info("skipping unsuitable device")
			rejections = append(rejections, fmt.Sprintf("device %d (%s): %s", deviceIdx, caps.Properties.DeviceName, reason))
			continue
		}

		indices := FindQueueFamilies(caps.QueueFamilies)
		r.selection = &DeviceSelection{
			PhysicalDevice: device,
			Properties:     caps.Properties,
			Extensions:     caps.Extensions,
			GraphicsFamily: *indices.GraphicsFamily,
			PresentFamily:  *indices.PresentFamily,
		}

		r.logger.WithFields(logrus.Fields{
			"device":         caps.Properties.DeviceName,
			"pipelineCache":  caps.Properties.PipelineCacheUUID,
			"graphicsFamily": r.selection.GraphicsFamily,
			"presentFamily":  r.selection.PresentFamily,
		}).Info("selected physical device")
		return nil
	}

	err = unsupportedf("no compatible GPU among %d devices", len(physicalDevices))
	for _, rejection := range rejections {
		err = errors.WithDetail(err, rejection)
	}
	return err
}

func (r *Renderer) createLogicalDevice() error {
	indices := r.selection.QueueFamilyIndices()

	var queueFamilyOptions []DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range indices.Unique() {
		queueFamilyOptions = append(queueFamilyOptions, DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	var extensionNames []string
	extensionNames = append(extensionNames, r.config.DeviceExtensions...)

	// Required for drivers layered on other APIs, such as MoltenVK
	if HasAll([]string{PortabilitySubsetExtensionName}, r.selection.Extensions) {
		extensionNames = append(extensionNames, PortabilitySubsetExtensionName)
	}

	device, err := r.selection.PhysicalDevice.CreateDevice(DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return creationFailure(err, "logical device")
	}
	r.cleanups.push(StepLogicalDevice, "logical device", device.Destroy)

	r.device = &LogicalDeviceBundle{
		Device:            device,
		GraphicsQueue:     device.GetQueue(*indices.GraphicsFamily, 0),
		PresentQueue:      device.GetQueue(*indices.PresentFamily, 0),
		EnabledExtensions: extensionNames,
	}
	return nil
}
