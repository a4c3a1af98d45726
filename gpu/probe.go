package gpu

type InstanceCapabilities struct {
	Layers     []string
	Extensions []string
}

type QueueFamily struct {
	Index            int
	Properties       QueueFamilyProperties
	PresentSupported bool
}

type DeviceCapabilities struct {
	Properties    PhysicalDeviceProperties
	Layers        []string
	Extensions    []string
	QueueFamilies []QueueFamily
}

// SurfaceSupport is what a device can do with a particular surface.
type SurfaceSupport struct {
	Capabilities SurfaceCapabilities
	Formats      []SurfaceFormat
	PresentModes []PresentMode
}

func ProbeInstance(loader Loader) (InstanceCapabilities, error) {
	var caps InstanceCapabilities
	var err error

	caps.Layers, err = loader.AvailableLayers()
	if err != nil {
		return caps, queryFailure(err, "instance layers")
	}

	caps.Extensions, err = loader.AvailableExtensions()
	if err != nil {
		return caps, queryFailure(err, "instance extensions")
	}

	return caps, nil
}

// ProbeDevice reports everything the device exposes, including per-family
// presentation support for the given surface.
func ProbeDevice(device PhysicalDevice, surface Surface) (DeviceCapabilities, error) {
	var caps DeviceCapabilities
	var err error

	caps.Properties, err = device.Properties()
	if err != nil {
		return caps, queryFailure(err, "device properties")
	}

	caps.Layers, err = device.AvailableLayers()
	if err != nil {
		return caps, queryFailure(err, "device layers")
	}

	caps.Extensions, err = device.AvailableExtensions()
	if err != nil {
		return caps, queryFailure(err, "device extensions")
	}

	families, err := device.QueueFamilyProperties()
	if err != nil {
		return caps, queryFailure(err, "queue family properties")
	}

	for queueFamilyIdx, properties := range families {
		supported, err := device.SurfaceSupport(surface, queueFamilyIdx)
		if err != nil {
			return caps, queryFailure(err, "surface support")
		}

		caps.QueueFamilies = append(caps.QueueFamilies, QueueFamily{
			Index:            queueFamilyIdx,
			Properties:       properties,
			PresentSupported: supported,
		})
	}

	return caps, nil
}

func ProbeSurface(device PhysicalDevice, surface Surface) (SurfaceSupport, error) {
	var details SurfaceSupport
	var err error

	details.Capabilities, err = device.SurfaceCapabilities(surface)
	if err != nil {
		return details, queryFailure(err, "surface capabilities")
	}

	details.Formats, err = device.SurfaceFormats(surface)
	if err != nil {
		return details, queryFailure(err, "surface formats")
	}

	details.PresentModes, err = device.SurfacePresentModes(surface)
	if err != nil {
		return details, queryFailure(err, "surface present modes")
	}

	return details, nil
}
