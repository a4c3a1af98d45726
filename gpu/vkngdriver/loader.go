// Package vkngdriver implements the gpu driver interfaces on top of
// vkngwrapper.
package vkngdriver

import (
	"sort"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

type Loader struct {
	globalDriver core1_0.GlobalDriver
}

// NewLoader loads vulkan through the given vkGetInstanceProcAddr, e.g.
// sdl.VulkanGetVkGetInstanceProcAddr().
func NewLoader(procAddr unsafe.Pointer) (*Loader, error) {
	globalDriver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "load vulkan")
	}
	return &Loader{globalDriver: globalDriver}, nil
}

func (l *Loader) AvailableLayers() ([]string, error) {
	layers, _, err := l.globalDriver.AvailableLayers()
	if err != nil {
		return nil, err
	}

	return sortedKeys(layers), nil
}

func (l *Loader) AvailableExtensions() ([]string, error) {
	extensions, _, err := l.globalDriver.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	return sortedKeys(extensions), nil
}

func (l *Loader) CreateInstance(info gpu.InstanceCreateInfo) (gpu.Instance, error) {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    info.ApplicationName,
		ApplicationVersion: common.Version(info.ApplicationVersion),
		EngineName:         info.EngineName,
		EngineVersion:      common.Version(info.EngineVersion),
		APIVersion:         common.APIVersion(info.APIVersion),

		EnabledLayerNames:     info.EnabledLayerNames,
		EnabledExtensionNames: info.EnabledExtensionNames,
	}

	if info.EnumeratePortability {
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if info.DebugMessenger != nil {
		instanceOptions.Next = debugMessengerOptions(*info.DebugMessenger)
	}

	instanceDriver, res, err := l.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateInstance returned %v", res)
	}

	return &Instance{
		driver:           instanceDriver,
		surfaceExtension: khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver),
	}, nil
}

// Instance owns a vulkan instance and the extension drivers loaded from it.
type Instance struct {
	driver           core1_0.CoreInstanceDriver
	surfaceExtension khr_surface.ExtensionDriver
	debugDriver      ext_debug_utils.ExtensionDriver
}

func (i *Instance) Driver() core1_0.CoreInstanceDriver {
	return i.driver
}

func (i *Instance) SurfaceExtension() khr_surface.ExtensionDriver {
	return i.surfaceExtension
}

// WrapSurface takes ownership of a surface created by a windowing
// integration against this instance.
func (i *Instance) WrapSurface(surface khr_surface.Surface) gpu.Surface {
	return &Surface{instance: i, handle: surface}
}

func (i *Instance) CreateDebugMessenger(info gpu.DebugMessengerCreateInfo) (gpu.DebugMessenger, error) {
	if i.debugDriver == nil {
		i.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	}

	messenger, res, err := i.debugDriver.CreateDebugUtilsMessenger(nil, debugMessengerOptions(info))
	if err != nil {
		return nil, errors.Wrapf(err, "vkCreateDebugUtilsMessengerEXT returned %v", res)
	}

	return &DebugMessenger{debugDriver: i.debugDriver, handle: messenger}, nil
}

func (i *Instance) EnumeratePhysicalDevices() ([]gpu.PhysicalDevice, error) {
	physicalDevices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	devices := make([]gpu.PhysicalDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, &PhysicalDevice{instance: i, handle: device})
	}
	return devices, nil
}

func (i *Instance) Destroy() {
	i.driver.DestroyInstance(nil)
}

type DebugMessenger struct {
	debugDriver ext_debug_utils.ExtensionDriver
	handle      ext_debug_utils.DebugUtilsMessenger
}

func (m *DebugMessenger) Destroy() {
	m.debugDriver.DestroyDebugUtilsMessenger(m.handle, nil)
}

type Surface struct {
	instance *Instance
	handle   khr_surface.Surface
}

func (s *Surface) vkHandle() khr_surface.Surface {
	return s.handle
}

func (s *Surface) Destroy() {
	s.instance.surfaceExtension.DestroySurface(s.handle, nil)
}

func debugMessengerOptions(info gpu.DebugMessengerCreateInfo) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := info.Callback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.DebugUtilsMessageSeverityFlags(info.Severities),
		MessageType:     ext_debug_utils.DebugUtilsMessageTypeFlags(info.Types),
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			if callback != nil {
				callback(gpu.MessageSeverity(severity), gpu.MessageType(msgType), data.Message)
			}
			return false
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
