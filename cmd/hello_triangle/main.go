package main

//go:generate glslc shaders/shader.vert -o shaders/vert.spv
//go:generate glslc shaders/shader.frag -o shaders/frag.spv

import (
	"flag"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/config"
	"github.com/vkngwrapper/bootstrap/gpu"
	"github.com/vkngwrapper/bootstrap/gpu/vkngdriver"
	"github.com/vkngwrapper/bootstrap/window/sdlwindow"
)

// shaderBox serves the bundled shaders unless dir overrides them. packr
// resolves relative box paths against the calling source file, so dir is
// made absolute against the working directory first.
func shaderBox(dir string) (packr.Box, error) {
	if dir == "" {
		return packr.NewBox("./shaders"), nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return packr.Box{}, errors.Wrapf(err, "shader directory %s", dir)
	}
	return packr.NewBox(abs), nil
}

func run(cfg config.Config) error {
	window, err := sdlwindow.Open(cfg.AppName, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() {
		if err := window.Close(); err != nil {
			log.WithError(err).Warn("closing window")
		}
	}()

	loader, err := vkngdriver.NewLoader(window.ProcAddr())
	if err != nil {
		return err
	}

	shaders, err := shaderBox(cfg.ShaderDir)
	if err != nil {
		return err
	}

	renderer, err := gpu.Bootstrap(gpu.Options{
		Config:  cfg.GPU(),
		Loader:  loader,
		Window:  window,
		Shaders: shaders,
		Logger:  log.StandardLogger(),
	})
	if err != nil {
		return errors.Wrap(err, "bootstrap renderer")
	}
	defer renderer.Destroy()

	for {
		event := window.WaitEvent()
		switch event.Kind {
		case sdlwindow.EventClose:
			return nil
		case sdlwindow.EventKeyPress:
			if event.Key == sdl.K_ESCAPE {
				return nil
			}
		case sdlwindow.EventResize:
			log.WithFields(log.Fields{
				"width":  event.Width,
				"height": event.Height,
			}).Debug("window resized")
		}
	}
}

func main() {
	runtime.LockOSThread()

	envFile := flag.String("env", ".env", "optional file of BOOTSTRAP_* settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	log.SetLevel(cfg.LogLevel)

	err = run(cfg)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
