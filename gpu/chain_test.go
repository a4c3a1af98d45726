package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanupStackUnwindsInReverse(t *testing.T) {
	var order []string
	stack := cleanupStack{logger: quietLogger()}

	for _, name := range []string{"instance", "surface", "logical device"} {
		name := name
		stack.push(StepInstance, name, func() { order = append(order, name) })
	}
	assert.Equal(t, 3, stack.len())

	stack.unwind()
	assert.Equal(t, []string{"logical device", "surface", "instance"}, order)
	assert.Equal(t, 0, stack.len())

	stack.unwind()
	assert.Len(t, order, 3)
}

func TestCleanupStackWithoutLogger(t *testing.T) {
	calls := 0
	var stack cleanupStack
	stack.push(StepSurface, "surface", func() { calls++ })

	stack.unwind()
	stack.unwind()
	assert.Equal(t, 1, calls)
}

func TestStepAndStateNames(t *testing.T) {
	assert.Equal(t, "debug messenger", StepDebugMessenger.String())
	assert.Equal(t, "framebuffers", StepFramebuffers.String())
	assert.Equal(t, "Step(42)", Step(42).String())

	assert.Equal(t, "FramebuffersReady", StateFramebuffersReady.String())
	assert.Equal(t, "TornDown", StateTornDown.String())
	assert.Equal(t, "State(-1)", State(-1).String())
}
