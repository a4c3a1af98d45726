// Package sdlwindow provides the window the renderer draws into, backed by
// SDL2.
package sdlwindow

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/bootstrap/gpu/vkngdriver"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

type Window struct {
	window *sdl.Window
}

// Open initializes SDL video and creates a resizable vulkan window. Must be
// called from the main thread.
func Open(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "init sdl video")
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create window")
	}

	return &Window{window: window}, nil
}

// ProcAddr is vkGetInstanceProcAddr as loaded by SDL.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) CreateSurface(instance gpu.Instance) (gpu.Surface, error) {
	vkInstance, ok := instance.(*vkngdriver.Instance)
	if !ok {
		return nil, errors.Newf("instance %T was not created by vkngdriver", instance)
	}

	surface, err := vkng_sdl2.CreateSurface(vkInstance.Driver().Instance(), vkInstance.SurfaceExtension(), w.window)
	if err != nil {
		return nil, err
	}

	return vkInstance.WrapSurface(surface), nil
}

func (w *Window) PhysicalSize() (int, int) {
	width, height := w.window.VulkanGetDrawableSize()
	return int(width), int(height)
}

func (w *Window) ScaleFactor() float64 {
	drawableWidth, _ := w.window.VulkanGetDrawableSize()
	logicalWidth, _ := w.window.GetSize()
	if drawableWidth <= 0 || logicalWidth <= 0 {
		return 1
	}
	return float64(drawableWidth) / float64(logicalWidth)
}

// Close destroys the window and shuts SDL down. The renderer must already
// be torn down.
func (w *Window) Close() error {
	err := w.window.Destroy()
	sdl.Quit()
	return err
}
