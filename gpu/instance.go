package gpu

import (
	"github.com/sirupsen/logrus"
)

func (r *Renderer) createInstance() error {
	caps, err := ProbeInstance(r.loader)
	if err != nil {
		return err
	}

	instanceOptions := InstanceCreateInfo{
		ApplicationName:    r.config.ApplicationName,
		ApplicationVersion: r.config.ApplicationVersion,
		EngineName:         r.config.EngineName,
		EngineVersion:      r.config.EngineVersion,
		APIVersion:         r.config.APIVersion,
	}

	// Add extensions
	windowExtensions := r.window.RequiredInstanceExtensions()
	if missing := Missing(windowExtensions, caps.Extensions); len(missing) > 0 {
		return unsupportedf("window requires missing instance extensions %v", missing)
	}
	instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, windowExtensions...)

	if r.config.EnableValidation {
		if !HasAll([]string{DebugUtilsExtensionName}, caps.Extensions) {
			return unsupportedf("validation requested but instance extension %s is not available", DebugUtilsExtensionName)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, DebugUtilsExtensionName)
	}

	if HasAll([]string{PortabilityEnumerationExtensionName}, caps.Extensions) {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, PortabilityEnumerationExtensionName)
		instanceOptions.EnumeratePortability = true
	}

	// Add layers
	if r.config.EnableValidation {
		if missing := Missing(r.config.ValidationLayers, caps.Layers); len(missing) > 0 {
			return unsupportedf("validation layers %v not available- install LunarG Vulkan SDK", missing)
		}
		instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, r.config.ValidationLayers...)

		messengerOptions := r.debugMessengerOptions()
		instanceOptions.DebugMessenger = &messengerOptions
	}

	instance, err := r.loader.CreateInstance(instanceOptions)
	if err != nil {
		return creationFailure(err, "instance")
	}
	r.cleanups.push(StepInstance, "instance", instance.Destroy)

	r.context = &Context{
		Instance:          instance,
		EnabledLayers:     instanceOptions.EnabledLayerNames,
		EnabledExtensions: instanceOptions.EnabledExtensionNames,
	}
	r.logger.WithFields(logrus.Fields{
		"layers":     instanceOptions.EnabledLayerNames,
		"extensions": instanceOptions.EnabledExtensionNames,
	}).Debug("instance created")

	return nil
}

func (r *Renderer) debugMessengerOptions() DebugMessengerCreateInfo {
	return DebugMessengerCreateInfo{
		Severities: r.config.DebugSeverities,
		Types:      TypeGeneral | TypeValidation | TypePerformance,
		Callback:   r.logDebug,
	}
}

// setupDebugMessenger is a no-op without validation. The destroyer is pushed
// in the same branch that creates the messenger, so the two never disagree.
func (r *Renderer) setupDebugMessenger() error {
	if !r.config.EnableValidation {
		return nil
	}

	messenger, err := r.context.Instance.CreateDebugMessenger(r.debugMessengerOptions())
	if err != nil {
		return creationFailure(err, "debug messenger")
	}
	r.cleanups.push(StepDebugMessenger, "debug messenger", messenger.Destroy)

	r.context.DebugMessenger = messenger
	return nil
}

func (r *Renderer) logDebug(severity MessageSeverity, msgType MessageType, message string) {
	entry := r.logger.WithFields(logrus.Fields{
		"severity": severity,
		"type":     msgType,
	})

	switch {
	case severity&SeverityError != 0:
		entry.Error(message)
	case severity&SeverityWarning != 0:
		entry.Warn(message)
	case severity&SeverityInfo != 0:
		entry.Info(message)
	default:
		entry.Debug(message)
	}
}

func (r *Renderer) createSurface() error {
	surface, err := r.window.CreateSurface(r.context.Instance)
	if err != nil {
		return creationFailure(err, "surface")
	}
	r.cleanups.push(StepSurface, "surface", surface.Destroy)

	r.surface = &SurfaceBundle{Surface: surface}
	return nil
}
