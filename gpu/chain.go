package gpu

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Step int

const (
	StepInstance Step = iota
	StepDebugMessenger
	StepSurface
	StepPhysicalDevice
	StepLogicalDevice
	StepSwapchain
	StepImageViews
	StepRenderPass
	StepGraphicsPipeline
	StepFramebuffers
)

var stepNames = map[Step]string{
	StepInstance:         "instance",
	StepDebugMessenger:   "debug messenger",
	StepSurface:          "surface",
	StepPhysicalDevice:   "physical device",
	StepLogicalDevice:    "logical device",
	StepSwapchain:        "swapchain",
	StepImageViews:       "image views",
	StepRenderPass:       "render pass",
	StepGraphicsPipeline: "graphics pipeline",
	StepFramebuffers:     "framebuffers",
}

func (s Step) String() string {
	name, ok := stepNames[s]
	if !ok {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return name
}

type State int

const (
	StateUninitialized State = iota
	StateInstanceReady
	StateSurfaceReady
	StateDeviceSelected
	StateLogicalDeviceReady
	StateSwapchainReady
	StateViewsReady
	StatePipelineReady
	StateFramebuffersReady
	StateRunning
	StateTornDown
)

var stateNames = map[State]string{
	StateUninitialized:      "Uninitialized",
	StateInstanceReady:      "InstanceReady",
	StateSurfaceReady:       "SurfaceReady",
	StateDeviceSelected:     "DeviceSelected",
	StateLogicalDeviceReady: "LogicalDeviceReady",
	StateSwapchainReady:     "SwapchainReady",
	StateViewsReady:         "ViewsReady",
	StatePipelineReady:      "PipelineReady",
	StateFramebuffersReady:  "FramebuffersReady",
	StateRunning:            "Running",
	StateTornDown:           "TornDown",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return name
}

type cleanup struct {
	step    Step
	object  string
	destroy func()
}

// cleanupStack records how to release each native object as soon as it is
// created. unwind releases them in reverse creation order.
type cleanupStack struct {
	entries []cleanup
	logger  logrus.FieldLogger
}

func (s *cleanupStack) push(step Step, object string, destroy func()) {
	s.entries = append(s.entries, cleanup{step: step, object: object, destroy: destroy})
}

func (s *cleanupStack) len() int {
	return len(s.entries)
}

// unwind runs every destroyer exactly once. The stack is empty afterward, so
// a second unwind does nothing.
func (s *cleanupStack) unwind() {
	for len(s.entries) > 0 {
		last := len(s.entries) - 1
		entry := s.entries[last]
		s.entries = s.entries[:last]

		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"step":   entry.step,
				"object": entry.object,
			}).Debug("destroying")
		}
		entry.destroy()
	}
	s.entries = nil
}
